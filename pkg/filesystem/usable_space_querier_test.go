//go:build darwin || freebsd || linux || windows

package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-local-tmp-storage/pkg/filesystem"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSystemUsableSpaceQuerier(t *testing.T) {
	t.Run("ExistingDirectory", func(t *testing.T) {
		usableSpace, err := filesystem.SystemUsableSpaceQuerier.GetUsableSpace(t.TempDir())
		require.NoError(t, err)
		require.GreaterOrEqual(t, usableSpace, int64(0))
	})

	t.Run("NonexistentDirectory", func(t *testing.T) {
		// Failures need to be reported, so that admission
		// checks can fail closed.
		_, err := filesystem.SystemUsableSpaceQuerier.GetUsableSpace(filepath.Join(t.TempDir(), "nonexistent"))
		require.Error(t, err)
		require.NotEqual(t, codes.OK, status.Code(err))
	})
}
