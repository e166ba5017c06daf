package storage

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

const MaxFileSize = 50 * 1024 * 1024 // 50 MB

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidMimeType = errors.New("unsupported file type")
)

// AllowedMimeTypes defines which upload types are accepted.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/webm":      true,
	"application/pdf": true,
}

// Store converts an uploaded file into a durable URL. Folder partitions
// uploads by purpose (profile, aadhar, work, intro).
type Store interface {
	Save(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

// openAndSniff validates size, opens the part, and detects the MIME type
// from the first 512 bytes, rewinding afterwards.
func openAndSniff(fileHeader *multipart.FileHeader) (multipart.File, string, error) {
	if fileHeader.Size == 0 {
		return nil, "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	if !AllowedMimeTypes[mimeType] {
		file.Close()
		return nil, "", ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}
	return file, mimeType, nil
}

func extensionFor(filename, mimeType string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return ext
	}
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "application/pdf":
		return ".pdf"
	}
	return ""
}
