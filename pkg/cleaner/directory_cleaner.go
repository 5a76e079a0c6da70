package cleaner

import (
	"context"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
)

// Directory whose contents can be removed by a Cleaner returned by
// NewDirectoryCleaner.
type Directory interface {
	RemoveAllChildren() error
	Close() error
}

// DirectoryOpener is called by the Cleaner returned by
// NewDirectoryCleaner to obtain a handle to the directory to clean.
// This permits the directory to be created or replaced between
// invocations.
type DirectoryOpener func() (Directory, error)

// NewDirectoryCleaner creates a Cleaner that can remove all files
// within a given directory. It can, for example, be used to remove
// storage roots of which the contents are stale after a crash.
func NewDirectoryCleaner(openDirectory DirectoryOpener, path string) Cleaner {
	return func(ctx context.Context) error {
		directory, err := openDirectory()
		if err != nil {
			return util.StatusWrapfWithCode(err, codes.Internal, "Failed to open directory %#v", path)
		}
		defer directory.Close()

		if err := directory.RemoveAllChildren(); err != nil {
			return util.StatusWrapfWithCode(err, codes.Internal, "Failed to clean directory %#v", path)
		}
		return nil
	}
}
