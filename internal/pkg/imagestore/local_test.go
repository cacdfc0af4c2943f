package imagestore

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalUploader_UploadBase64(t *testing.T) {
	dir := t.TempDir()
	up, err := NewLocalUploader(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	payload := []byte("not-a-real-jpeg")
	encoded := base64.StdEncoding.EncodeToString(payload)

	url, err := up.UploadBase64(context.Background(), encoded, "attendance_a@x.com_1735689600000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/attendance_a@x.com_1735689600000.jpg", url)

	written, err := os.ReadFile(filepath.Join(dir, "attendance_a@x.com_1735689600000.jpg"))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestLocalUploader_StripsDataURIPrefix(t *testing.T) {
	dir := t.TempDir()
	up, err := NewLocalUploader(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	_, err = up.UploadBase64(context.Background(), encoded, "img")
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "img.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), written)
}

func TestLocalUploader_BadBase64(t *testing.T) {
	up, err := NewLocalUploader(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = up.UploadBase64(context.Background(), "%%%not-base64%%%", "img")
	assert.Error(t, err)
}
