package filesystem

import (
	"os"
	"path/filepath"

	"github.com/buildbarn/bb-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/filesystem/path"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
)

type localStorageRootOpener struct{}

func (localStorageRootOpener) OpenStorageRoot(dataDirectoryPath string, create bool) (StorageRoot, error) {
	d, err := filesystem.NewLocalDirectory(path.LocalFormat.NewParser(dataDirectoryPath))
	if err != nil {
		return nil, err
	}
	currentPath := dataDirectoryPath
	for _, component := range storageRootComponents {
		currentPath = filepath.Join(currentPath, component.String())
		if create {
			if err := d.Mkdir(component, 0o777); err != nil && !os.IsExist(err) {
				d.Close()
				return nil, util.StatusWrapfWithCode(err, codes.Internal, "Failed to create directory %#v", currentPath)
			}
		}
		child, err := d.EnterDirectory(component)
		d.Close()
		if err != nil {
			// Returned as is, so that callers can use
			// os.IsNotExist().
			return nil, err
		}
		d = child
	}
	return d, nil
}

// LocalStorageRootOpener opens storage roots on the local file system.
// Every call opens a new handle, meaning that storage roots that are
// removed while the process is running are recreated.
var LocalStorageRootOpener StorageRootOpener = localStorageRootOpener{}
