package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes uploaded images to a directory on disk and serves
// them back through the static file route.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func extensionFor(fileType string) string {
	switch fileType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

// UploadFile stores the file under a generated name and returns the URL
// path it will be served at.
func (s *LocalStore) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder: %v", err)
	}

	filename := fmt.Sprintf("%s-%s%s", uuid.New().String(), time.Now().Format("20060102150405"), extensionFor(fileType))

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write file: %v", err)
	}

	return fmt.Sprintf("/uploads/%s/%s", folder, filename), nil
}

// DeleteFile removes a previously uploaded file given its URL path.
func (s *LocalStore) DeleteFile(ctx context.Context, fileURL string) error {
	const prefix = "/uploads/"
	if !strings.HasPrefix(fileURL, prefix) {
		return fmt.Errorf("invalid upload URL format")
	}

	rel := filepath.Clean(fileURL[len(prefix):])
	if rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid upload URL format")
	}

	if err := os.Remove(filepath.Join(s.baseDir, rel)); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

// BaseDir is the directory the static file route should serve.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}
