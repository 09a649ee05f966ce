package util_test

import (
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConstructFileURL(t *testing.T) {
	cfg := &config.PlatformConfig{
		Endpoint:  "https://cloud.example.com/v1/",
		BucketID:  "bucket",
		ProjectID: "project 1",
	}

	url := util.ConstructFileURL(cfg, "f1")

	assert.Equal(t, "https://cloud.example.com/v1/storage/buckets/bucket/files/f1/view?project=project+1", url)
}

func TestParseStringify_DeepCopy(t *testing.T) {
	original := &model.File{ID: "f1", Name: "a.txt", Users: []string{"a@b.c"}}

	clone, err := util.ParseStringify(original)
	require.NoError(t, err)

	assert.Equal(t, original, clone)
	clone.Users[0] = "changed@b.c"
	assert.Equal(t, "a@b.c", original.Users[0])
}

func TestParseStringify_Unsupported(t *testing.T) {
	_, err := util.ParseStringify(make(chan int))

	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<b>report</b>.pdf", "report.pdf"},
		{"Tom & Jerry.txt", "Tom & Jerry.txt"},
		{"  spaced.md  ", "spaced.md"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, util.Sanitize(tt.input))
		})
	}
}

func TestGenerateOTPCode(t *testing.T) {
	code, err := util.GenerateOTPCode(8)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{8}$`, code)

	code, err = util.GenerateOTPCode(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestLogError_WrapsCause(t *testing.T) {
	cause := errors.New("boom")

	err := util.LogError("[Test] ошибка", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[Test] ошибка: boom", err.Error())
}

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()

	util.HandleError(rec, "доступ запрещён", http.StatusForbidden)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Forbidden","message":"доступ запрещён","code":403}`, rec.Body.String())
}

func TestInitLogger_UnknownLevel(t *testing.T) {
	err := util.InitLogger(&config.LoggingConfig{Level: "verbose"})

	assert.Error(t, err)
}

func TestInitLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		util.Logger = zap.NewNop()
		util.Sugar = util.Logger.Sugar()
	})

	err := util.InitLogger(&config.LoggingConfig{Level: "debug", Path: dir + "/logs/server.log", MaxSizeMB: 1})

	require.NoError(t, err)
	util.Sugar.Infow("проверка", "key", "value")
	assert.DirExists(t, dir+"/logs")
}
