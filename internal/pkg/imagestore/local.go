package imagestore

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalUploader writes decoded images under a base directory and serves
// them by static URL. Used in development where a Cloudinary account is not
// worth the setup.
type LocalUploader struct {
	basePath string
	baseURL  string // e.g., "http://localhost:8080/uploads"
}

func NewLocalUploader(basePath, baseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalUploader{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// UploadBase64 implements Uploader.
func (u *LocalUploader) UploadBase64(ctx context.Context, base64Image, name string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(stripDataURI(base64Image))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// Sanitize name to prevent directory traversal.
	cleanName := filepath.Clean(name) + ".jpg"
	fullPath := filepath.Join(u.basePath, cleanName)
	if !strings.HasPrefix(fullPath, u.basePath) {
		return "", fmt.Errorf("invalid file name: %s", name)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.baseURL, cleanName), nil
}
