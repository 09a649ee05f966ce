package util_test

import (
	"file-storage-server/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFileType(t *testing.T) {
	tests := []struct {
		name         string
		fileName     string
		expectedType string
		expectedExt  string
	}{
		{"pdf document", "report.pdf", util.FileTypeDocument, "pdf"},
		{"upper case extension", "Photo.JPG", util.FileTypeImage, "jpg"},
		{"several dots", "archive.backup.mp4", util.FileTypeVideo, "mp4"},
		{"audio", "song.flac", util.FileTypeAudio, "flac"},
		{"design file", "mockup.fig", util.FileTypeDocument, "fig"},
		{"unknown extension", "data.bin", util.FileTypeOther, "bin"},
		{"no extension", "Makefile", util.FileTypeOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileType, ext := util.GetFileType(tt.fileName)

			assert.Equal(t, tt.expectedType, fileType)
			assert.Equal(t, tt.expectedExt, ext)
		})
	}
}

func TestGetFileTypesParams(t *testing.T) {
	assert.Equal(t, []string{"document"}, util.GetFileTypesParams("documents"))
	assert.Equal(t, []string{"image"}, util.GetFileTypesParams("images"))
	assert.Equal(t, []string{"video", "audio"}, util.GetFileTypesParams("media"))
	assert.Equal(t, []string{"other"}, util.GetFileTypesParams("others"))
	assert.Equal(t, []string{"document"}, util.GetFileTypesParams("anything"))
}

func TestIsFileType(t *testing.T) {
	assert.True(t, util.IsFileType("audio"))
	assert.False(t, util.IsFileType("pdf"))
	assert.False(t, util.IsFileType(""))
}
