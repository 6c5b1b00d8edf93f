package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/filestorage/domain"
)

// Images are resized to fit this box before storage.
const (
	MaxImageWidth  = 600
	MaxImageHeight = 600
	jpegQuality    = 85
)

var ErrInvalidImage = errors.New("file is not a supported image")

// FileService provides high-level file operations
type FileService struct {
	storage domain.FileStorage
}

func NewFileService(storage domain.FileStorage) *FileService {
	return &FileService{storage: storage}
}

// Upload stores file under folder with a generated name that keeps the
// original extension. It returns the public URL and the storage key.
func (s *FileService) Upload(ctx context.Context, file io.Reader, filename, folder, contentType string) (string, string, error) {
	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), strings.ToLower(filepath.Ext(filename)))

	url, err := s.storage.UploadFile(ctx, key, file, contentType)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// UploadImage decodes an image, resizes it to fit MaxImageWidth x
// MaxImageHeight without upscaling and stores it as JPEG.
func (s *FileService) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	src, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrInvalidImage
	}

	dst := src
	if b := src.Bounds(); b.Dx() > MaxImageWidth || b.Dy() > MaxImageHeight {
		dst = imaging.Fit(src, MaxImageWidth, MaxImageHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	url, _, err := s.Upload(ctx, bytes.NewReader(buf.Bytes()), "image.jpg", folder, "image/jpeg")
	return url, err
}

// Open returns a reader over the object behind a public URL or a raw key.
func (s *FileService) Open(ctx context.Context, urlOrKey string) (io.ReadCloser, *domain.File, error) {
	if urlOrKey == "" {
		return nil, nil, domain.ErrFileNotFound
	}
	key := urlOrKey
	if k, err := s.storage.GetKeyFromURL(urlOrKey); err == nil {
		key = k
	}
	return s.storage.OpenFile(ctx, key)
}

// DeleteByURL removes the object behind a URL previously returned by an upload.
func (s *FileService) DeleteByURL(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	key, err := s.storage.GetKeyFromURL(url)
	if err != nil {
		return err
	}
	return s.storage.DeleteFile(ctx, key)
}
