package integrity

import (
	"context"
	"errors"

	"menu-manager/core/storage"
	"menu-manager/feature/integrity/checks"
	"menu-manager/feature/menus/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStorageDisabled is returned by storage checks when no object storage is configured.
	ErrStorageDisabled = errors.New("object storage is not configured")
	// ErrDatabaseDisabled is returned by schema checks when no database is configured.
	ErrDatabaseDisabled = errors.New("database is not configured")
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. client and db may be nil.
func NewService(client storage.Client, bucket, region string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
		db:     db,
	}
}

// CheckSchema compares the menu tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrDatabaseDisabled
	}
	return checks.CheckSchema(s.db, models.All())
}

// CheckStorage returns the missing buckets.
func (s *Service) CheckStorage(ctx context.Context) ([]string, error) {
	if s.client == nil || s.bucket == "" {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the missing buckets.
func (s *Service) FixStorage(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStorage(ctx, s.client, s.region, s.logger, missing)
}
