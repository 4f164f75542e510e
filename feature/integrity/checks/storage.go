package checks

import (
	"context"
	"fmt"

	"menu-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckStorage returns the buckets that are missing.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		missing = append(missing, bucket)
	}

	return missing, nil
}

// FixStorage creates the missing buckets in region.
func FixStorage(ctx context.Context, client storage.Client, region string, logger *zap.Logger, missing []string) error {
	for _, bucket := range missing {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
			return err
		}
		logger.Info("Created missing bucket", zap.String("bucket", bucket))
	}
	return nil
}
