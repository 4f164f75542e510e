package menus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"menu-manager/core/storage"
	"menu-manager/feature/menus/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrPhotosDisabled is returned when no storage bucket is configured.
	ErrPhotosDisabled = errors.New("photo storage is not configured")
	// ErrPhotoNotFound is returned when a menu has no photo.
	ErrPhotoNotFound = errors.New("menu has no photo")
	// ErrInvalidPhotoName is returned for uploads without a usable file name.
	ErrInvalidPhotoName = errors.New("invalid photo file name")
)

// UploadPhoto stores r as the photo of menu id and records its object key.
// A previous photo under a different key is removed afterwards.
func (s *Service) UploadPhoto(ctx context.Context, id uint, filename string, r io.Reader, size int64, contentType string) (*models.Menu, error) {
	if !s.photosEnabled() {
		return nil, ErrPhotosDisabled
	}
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return nil, ErrInvalidPhotoName
	}

	menu, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	key := storage.PhotoKey(s.opts.PhotoPrefix, menu.ID, name)
	if _, err := s.client.PutObject(ctx, s.opts.Bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	previous := menu.Photo
	if err := s.db.WithContext(ctx).Model(menu).UpdateColumn("menu_photo", key).Error; err != nil {
		return nil, fmt.Errorf("failed to record photo: %w", err)
	}
	menu.Photo = key

	if previous != "" && previous != key {
		if err := s.client.RemoveObject(ctx, s.opts.Bucket, previous, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Warn("Failed to remove previous photo", zap.Uint("menu_id", id), zap.String("key", previous), zap.Error(err))
		}
	}

	s.logger.Info("Menu photo uploaded", zap.Uint("menu_id", id), zap.String("key", key), zap.Int64("size", size))
	return menu, nil
}

// Photo opens the stored photo of menu id. The caller closes the reader.
func (s *Service) Photo(ctx context.Context, id uint) (io.ReadCloser, string, error) {
	if !s.photosEnabled() {
		return nil, "", ErrPhotosDisabled
	}
	menu, err := s.find(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if menu.Photo == "" {
		return nil, "", ErrPhotoNotFound
	}

	obj, err := s.client.GetObject(ctx, s.opts.Bucket, menu.Photo, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open photo: %w", err)
	}
	return obj, menu.Photo, nil
}

func (s *Service) find(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	err := s.db.WithContext(ctx).First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu %d: %w", id, err)
	}
	return &menu, nil
}
