package checks

import (
	"context"
	"testing"

	"menu-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckStorage(t *testing.T) {
	t.Run("Bucket Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "media").Return(true, nil)

		missing, err := CheckStorage(context.Background(), mockClient, "media")
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "media").Return(false, nil)

		missing, err := CheckStorage(context.Background(), mockClient, "media")
		assert.NoError(t, err)
		assert.Equal(t, []string{"media"}, missing)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "media").Return(false, assert.AnError)

		_, err := CheckStorage(context.Background(), mockClient, "media")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestFixStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("MakeBucket", mock.Anything, "media", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	err := FixStorage(context.Background(), mockClient, "eu-west-1", zap.NewNop(), []string{"media"})
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)

	failing := new(mocks.Client)
	failing.On("MakeBucket", mock.Anything, "media", mock.Anything).Return(assert.AnError)
	assert.Error(t, FixStorage(context.Background(), failing, "", zap.NewNop(), []string{"media"}))
}
