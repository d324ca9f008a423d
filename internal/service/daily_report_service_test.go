package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAttachmentsDerivesJalaliDate(t *testing.T) {
	attachments, derived := buildAttachments([]AttachmentInput{
		{FileName: "14040118-site.jpg"},
		{FileName: "notes.txt"},
	})

	require.Len(t, attachments, 2)
	assert.Equal(t, "1404-01-18", attachments[0].FileDate)
	assert.Equal(t, "jalali", attachments[0].Calendar)
	assert.Empty(t, attachments[1].FileDate)
	assert.Equal(t, "1404-01-18", derived)
}

func TestBuildAttachmentsConvertsGregorianDate(t *testing.T) {
	attachments, derived := buildAttachments([]AttachmentInput{
		{FileName: "2025-04-07_report.pdf"},
	})

	require.Len(t, attachments, 1)
	assert.Equal(t, "2025-04-07", attachments[0].FileDate)
	assert.Equal(t, "gregorian", attachments[0].Calendar)
	assert.Equal(t, "1404-01-18", derived)
}

func TestBuildAttachmentsFirstDatedFileWins(t *testing.T) {
	_, derived := buildAttachments([]AttachmentInput{
		{FileName: "undated.jpg"},
		{FileName: "1403-11-22_a.jpg"},
		{FileName: "1404-01-01_b.jpg"},
	})
	assert.Equal(t, "1403-11-22", derived)
}

func TestBuildAttachmentsNoDates(t *testing.T) {
	attachments, derived := buildAttachments([]AttachmentInput{
		{FileName: "a.jpg"},
		{FileName: "b.pdf"},
	})
	assert.Len(t, attachments, 2)
	assert.Empty(t, derived)
}
