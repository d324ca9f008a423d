package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func TestRunInTxJoinsExistingTransaction(t *testing.T) {
	// The root DB is never touched when the context already carries a tx
	tm := NewTransactionManager(nil)
	ctx := context.WithValue(context.Background(), txKey, (*gorm.DB)(nil))

	called := false
	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		called = true
		assert.Equal(t, ctx, txCtx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRunInTxJoinPropagatesError(t *testing.T) {
	tm := NewTransactionManager(nil)
	ctx := context.WithValue(context.Background(), txKey, (*gorm.DB)(nil))

	wantErr := errors.New("boom")
	err := tm.RunInTx(ctx, func(context.Context) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}
