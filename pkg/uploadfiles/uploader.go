package uploadfiles

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"lms_backend/pkg/storage"

	"github.com/google/uuid"
)

const MaxImageSize = 3 * 1024 * 1024

var (
	ErrFileTooLarge      = errors.New("file size exceeds 3MB limit")
	ErrUnsupportedType   = errors.New("unsupported image type")
	ErrNotInMediaLibrary = errors.New("file is not stored in the media library")
)

var imageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// Uploader puts images into the media library under a folder prefix.
type Uploader struct {
	store storage.Storage
}

func NewUploader(store storage.Storage) *Uploader {
	return &Uploader{store: store}
}

func (u *Uploader) UploadImage(ctx context.Context, header *multipart.FileHeader, folder string) (string, error) {
	if header.Size > MaxImageSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := imageTypes[ext]
	if !ok {
		return "", ErrUnsupportedType
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), ext)
	url, err := u.store.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return url, nil
}

func (u *Uploader) Delete(ctx context.Context, fileURL string) error {
	key, ok := u.store.ObjectKey(fileURL)
	if !ok {
		return ErrNotInMediaLibrary
	}

	if err := u.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
