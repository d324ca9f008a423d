package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndError(t *testing.T) {
	ok := Success(http.StatusOK, "payload")
	assert.Equal(t, "success", ok.Status)
	assert.Equal(t, http.StatusOK, ok.StatusCode)
	assert.Equal(t, "payload", ok.Data)
	assert.Empty(t, ok.Error)

	bad := Error(http.StatusBadRequest, "invalid payload")
	assert.Equal(t, "error", bad.Status)
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
	assert.Equal(t, "invalid payload", bad.Error)
	assert.Nil(t, bad.Data)
}

func TestSuccessListEnvelope(t *testing.T) {
	res := SuccessList(http.StatusOK, []string{"a", "b"}, 42, 3, 20)

	assert.Equal(t, "success", res.Status)
	data, ok := res.Data.(ListData)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, data.Items)
	assert.Equal(t, int64(42), data.Total)
	assert.Equal(t, 3, data.Page)
	assert.Equal(t, 20, data.Limit)
}
