package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes uploads to disk under date-sharded directories and
// returns URLs served by the static file route.
type LocalStore struct {
	baseDir    string
	staticBase string
}

func NewLocalStore(baseDir, staticBase string) *LocalStore {
	return &LocalStore{baseDir: baseDir, staticBase: staticBase}
}

func (s *LocalStore) Save(_ context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, mimeType, err := openAndSniff(fileHeader)
	if err != nil {
		return "", err
	}
	defer file.Close()

	now := time.Now()
	relDir := filepath.Join(folder, fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day()))
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := uuid.New().String() + extensionFor(fileHeader.Filename, mimeType)
	absPath := filepath.Join(absDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	return s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/"), nil
}
