package tmpstorage

import (
	"path/filepath"

	"github.com/buildbarn/bb-local-tmp-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/clock"

	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultMinimumFreeSpaceBytes is the amount of space that is kept
// free on every data directory if no explicit value is configured.
const DefaultMinimumFreeSpaceBytes = 5 * 1024 * 1024 * 1024

// Configuration of a Provider.
type Configuration struct {
	// Data directories underneath which storage roots are placed,
	// in order of preference.
	DataDirectoryPaths []string

	// Amount of usable space that must remain on a data directory
	// after granting a request. If unset,
	// DefaultMinimumFreeSpaceBytes is used. Zero is permitted, in
	// which case requests are admitted as long as some space
	// remains.
	MinimumFreeSpaceBytes *int64
}

func (c *Configuration) setDefaults() {
	if c.MinimumFreeSpaceBytes == nil {
		minimumFreeSpaceBytes := int64(DefaultMinimumFreeSpaceBytes)
		c.MinimumFreeSpaceBytes = &minimumFreeSpaceBytes
	}
}

func (c *Configuration) validate() error {
	if len(c.DataDirectoryPaths) == 0 {
		return status.Error(codes.InvalidArgument, "At least one data directory must be provided")
	}
	for _, dataDirectoryPath := range c.DataDirectoryPaths {
		if !filepath.IsAbs(dataDirectoryPath) {
			return status.Errorf(codes.InvalidArgument, "Data directory %#v is not an absolute path", dataDirectoryPath)
		}
	}
	if *c.MinimumFreeSpaceBytes < 0 {
		return status.Errorf(codes.InvalidArgument, "Minimum free space must not be negative, while %d bytes were provided", *c.MinimumFreeSpaceBytes)
	}
	return nil
}

// NewProviderFromConfiguration creates a Provider that uses the system
// to obtain the amount of usable space. It exposes Prometheus metrics.
// If a TracerProvider is provided, it also creates trace spans.
func NewProviderFromConfiguration(configuration Configuration, tracerProvider trace.TracerProvider) (Provider, error) {
	configuration.DataDirectoryPaths = append([]string(nil), configuration.DataDirectoryPaths...)
	configuration.setDefaults()
	if err := configuration.validate(); err != nil {
		return nil, err
	}
	for i, dataDirectoryPath := range configuration.DataDirectoryPaths {
		configuration.DataDirectoryPaths[i] = filepath.Clean(dataDirectoryPath)
	}

	provider := NewMetricsProvider(
		NewLocalProvider(
			configuration.DataDirectoryPaths,
			filesystem.LocalStorageRootOpener,
			NewMinimumFreeSpaceAdmissionChecker(
				filesystem.SystemUsableSpaceQuerier,
				*configuration.MinimumFreeSpaceBytes)),
		clock.SystemClock)
	if tracerProvider != nil {
		provider = NewTracingProvider(provider, tracerProvider)
	}
	return provider, nil
}
