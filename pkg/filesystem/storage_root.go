package filesystem

import (
	"os"
	"path/filepath"

	"github.com/buildbarn/bb-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/filesystem/path"
)

// storageRootComponents is the location of the storage root, relative
// to a data directory.
var storageRootComponents = []path.Component{
	path.MustNewComponent("ml-local-data"),
	path.MustNewComponent("tmp"),
}

// StorageRootPath returns the path of the storage root underneath a
// given data directory.
func StorageRootPath(dataDirectoryPath string) string {
	p := dataDirectoryPath
	for _, component := range storageRootComponents {
		p = filepath.Join(p, component.String())
	}
	return p
}

// StorageRoot is a handle to the directory underneath a data directory
// in which temporary storage is allocated. Its methods are a subset of
// those of filesystem.DirectoryCloser, and have identical semantics.
type StorageRoot interface {
	Lstat(name path.Component) (filesystem.FileInfo, error)
	Mkdir(name path.Component, perm os.FileMode) error
	RemoveAll(name path.Component) error
	RemoveAllChildren() error
	Close() error
}

// StorageRootOpener opens the storage root underneath a data directory.
// When create is set, the storage root and its parent directories are
// created if absent. Otherwise, an error for which os.IsNotExist()
// holds is returned if the storage root does not exist.
type StorageRootOpener interface {
	OpenStorageRoot(dataDirectoryPath string, create bool) (StorageRoot, error)
}
