package tmpstorage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigurationSetDefaults(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		configuration := Configuration{DataDirectoryPaths: []string{"/data"}}
		configuration.setDefaults()
		require.Equal(t, int64(DefaultMinimumFreeSpaceBytes), *configuration.MinimumFreeSpaceBytes)
	})

	t.Run("ExplicitZero", func(t *testing.T) {
		// A zero reserve is a valid choice, and must not be
		// replaced by the default.
		minimumFreeSpaceBytes := int64(0)
		configuration := Configuration{
			DataDirectoryPaths:    []string{"/data"},
			MinimumFreeSpaceBytes: &minimumFreeSpaceBytes,
		}
		configuration.setDefaults()
		require.NoError(t, configuration.validate())
		require.Equal(t, int64(0), *configuration.MinimumFreeSpaceBytes)
	})
}
