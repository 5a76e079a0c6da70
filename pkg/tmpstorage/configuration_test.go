package tmpstorage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-local-tmp-storage/pkg/tmpstorage"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewProviderFromConfiguration(t *testing.T) {
	t.Run("NoDataDirectories", func(t *testing.T) {
		_, err := tmpstorage.NewProviderFromConfiguration(tmpstorage.Configuration{}, nil)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "At least one data directory must be provided"), err)
	})

	t.Run("RelativeDataDirectory", func(t *testing.T) {
		_, err := tmpstorage.NewProviderFromConfiguration(tmpstorage.Configuration{
			DataDirectoryPaths: []string{"data"},
		}, nil)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Data directory \"data\" is not an absolute path"), err)
	})

	t.Run("NegativeMinimumFreeSpace", func(t *testing.T) {
		minimumFreeSpaceBytes := int64(-1)
		_, err := tmpstorage.NewProviderFromConfiguration(tmpstorage.Configuration{
			DataDirectoryPaths:    []string{t.TempDir()},
			MinimumFreeSpaceBytes: &minimumFreeSpaceBytes,
		}, nil)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Minimum free space must not be negative, while -1 bytes were provided"), err)
	})

	t.Run("Success", func(t *testing.T) {
		// Use a reserve of a single byte, so that the test
		// does not depend on how full the disk is.
		dataDirectoryPath := t.TempDir()
		minimumFreeSpaceBytes := int64(1)
		provider, err := tmpstorage.NewProviderFromConfiguration(tmpstorage.Configuration{
			DataDirectoryPaths:    []string{dataDirectoryPath},
			MinimumFreeSpaceBytes: &minimumFreeSpaceBytes,
		}, noop.NewTracerProvider())
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, provider.CleanupLocalTmpStorageInCaseOfUncleanShutdown(ctx))
		require.DirExists(t, filepath.Join(dataDirectoryPath, "ml-local-data", "tmp"))

		p, admitted, err := provider.TryGetLocalTmpStorage(ctx, "job", 1)
		require.NoError(t, err)
		require.True(t, admitted)
		require.Equal(t, filepath.Join(dataDirectoryPath, "ml-local-data", "tmp", "job"), p)
		require.NoError(t, provider.CleanupLocalTmpStorage(ctx, "job"))
		require.NoDirExists(t, p)
	})
}
