package tmpstorage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/buildbarn/bb-local-tmp-storage/pkg/cleaner"
	re_filesystem "github.com/buildbarn/bb-local-tmp-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/filesystem/path"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type localProvider struct {
	dataDirectoryPaths  []string
	storageRootOpener   re_filesystem.StorageRootOpener
	admissionChecker    AdmissionChecker
	uncleanShutdownWipe cleaner.Cleaner
}

// NewLocalProvider creates a Provider that hands out directories
// stored underneath one or more data directories on the local system.
// Data directories are tried in the order provided. An allocation is
// placed in the first data directory for which the AdmissionChecker
// admits the request, unless an allocation with the same identifier
// already exists in one of them. In that case only that data directory
// is considered.
//
// The AdmissionChecker is called with the path of the data directory,
// not that of the storage root. The amount of usable space reported is
// therefore incorrect if <data-dir>/ml-local-data or the storage root
// is a separate mount point.
//
// The storage root underneath every data directory must not be used by
// anything else, as CleanupLocalTmpStorageInCaseOfUncleanShutdown()
// removes all of its contents unconditionally.
func NewLocalProvider(dataDirectoryPaths []string, storageRootOpener re_filesystem.StorageRootOpener, admissionChecker AdmissionChecker) Provider {
	storageRootCleaners := make([]cleaner.Cleaner, 0, len(dataDirectoryPaths))
	for _, dataDirectoryPath := range dataDirectoryPaths {
		storageRootCleaners = append(
			storageRootCleaners,
			cleaner.NewDirectoryCleaner(
				func() (cleaner.Directory, error) {
					return storageRootOpener.OpenStorageRoot(dataDirectoryPath, true)
				},
				re_filesystem.StorageRootPath(dataDirectoryPath)))
	}
	return &localProvider{
		dataDirectoryPaths:  dataDirectoryPaths,
		storageRootOpener:   storageRootOpener,
		admissionChecker:    admissionChecker,
		uncleanShutdownWipe: cleaner.NewChainedCleaner(storageRootCleaners),
	}
}

func (p *localProvider) TryGetLocalTmpStorage(ctx context.Context, identifier string, requestedSizeBytes int64) (string, bool, error) {
	component, err := newIdentifierComponent(identifier)
	if err != nil {
		return "", false, err
	}
	if requestedSizeBytes <= 0 {
		return "", false, status.Errorf(codes.InvalidArgument, "Requested size must be positive, while %d bytes were requested", requestedSizeBytes)
	}

	// An existing allocation may not be moved to another data
	// directory, as that would cause its contents to be lost.
	candidatePaths := p.dataDirectoryPaths
	if dataDirectoryPath, found, err := p.findAllocation(component, identifier); err != nil {
		return "", false, err
	} else if found {
		candidatePaths = []string{dataDirectoryPath}
	}

	for _, dataDirectoryPath := range candidatePaths {
		if !p.admissionChecker.TryAdmit(dataDirectoryPath, requestedSizeBytes) {
			continue
		}

		storageRootPath := re_filesystem.StorageRootPath(dataDirectoryPath)
		storageRoot, err := p.storageRootOpener.OpenStorageRoot(dataDirectoryPath, true)
		if err != nil {
			return "", false, util.StatusWrapfWithCode(err, codes.Internal, "Failed to open storage root %#v", storageRootPath)
		}
		allocationPath := filepath.Join(storageRootPath, identifier)
		err = createAllocationDirectory(storageRoot, component, allocationPath)
		storageRoot.Close()
		if err != nil {
			return "", false, err
		}
		return allocationPath, true, nil
	}
	return "", false, nil
}

// findAllocation returns the data directory in which an allocation
// with a given identifier already exists, if any.
func (p *localProvider) findAllocation(component path.Component, identifier string) (string, bool, error) {
	for _, dataDirectoryPath := range p.dataDirectoryPaths {
		storageRootPath := re_filesystem.StorageRootPath(dataDirectoryPath)
		storageRoot, err := p.storageRootOpener.OpenStorageRoot(dataDirectoryPath, false)
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return "", false, util.StatusWrapfWithCode(err, codes.Internal, "Failed to open storage root %#v", storageRootPath)
		}
		allocationPath := filepath.Join(storageRootPath, identifier)
		fileInfo, err := storageRoot.Lstat(component)
		storageRoot.Close()
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return "", false, util.StatusWrapfWithCode(err, codes.Internal, "Failed to obtain attributes of %#v", allocationPath)
		}
		if fileInfo.Type() != filesystem.FileTypeDirectory {
			return "", false, status.Errorf(codes.FailedPrecondition, "Path %#v already exists, but is not a directory", allocationPath)
		}
		return dataDirectoryPath, true, nil
	}
	return "", false, nil
}

// createAllocationDirectory creates the directory for an allocation if
// it does not exist yet. Any existing directory is left untouched.
func createAllocationDirectory(storageRoot re_filesystem.StorageRoot, component path.Component, allocationPath string) error {
	err := storageRoot.Mkdir(component, 0o777)
	if err == nil {
		return nil
	}
	if !os.IsExist(err) {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to create directory %#v", allocationPath)
	}
	fileInfo, err := storageRoot.Lstat(component)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to obtain attributes of %#v", allocationPath)
	}
	if fileInfo.Type() != filesystem.FileTypeDirectory {
		return status.Errorf(codes.FailedPrecondition, "Path %#v already exists, but is not a directory", allocationPath)
	}
	return nil
}

func (p *localProvider) CleanupLocalTmpStorage(ctx context.Context, identifier string) error {
	component, err := newIdentifierComponent(identifier)
	if err != nil {
		return err
	}

	// Even though allocations are only created in a single data
	// directory, remove them from all of them. The data directory
	// in which the allocation was placed is not tracked.
	allocationCleaners := make([]cleaner.Cleaner, 0, len(p.dataDirectoryPaths))
	for _, dataDirectoryPath := range p.dataDirectoryPaths {
		allocationCleaners = append(allocationCleaners, func(ctx context.Context) error {
			return p.cleanupAllocation(dataDirectoryPath, component, identifier)
		})
	}
	return cleaner.NewChainedCleaner(allocationCleaners)(ctx)
}

func (p *localProvider) cleanupAllocation(dataDirectoryPath string, component path.Component, identifier string) error {
	storageRootPath := re_filesystem.StorageRootPath(dataDirectoryPath)
	storageRoot, err := p.storageRootOpener.OpenStorageRoot(dataDirectoryPath, false)
	if os.IsNotExist(err) {
		// Nothing was ever allocated in this data directory.
		return nil
	} else if err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to open storage root %#v", storageRootPath)
	}
	defer storageRoot.Close()

	if err := storageRoot.RemoveAll(component); err != nil && !os.IsNotExist(err) {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to remove directory %#v", filepath.Join(storageRootPath, identifier))
	}
	return nil
}

func (p *localProvider) CleanupLocalTmpStorageInCaseOfUncleanShutdown(ctx context.Context) error {
	// Storage roots are retained, or created if absent.
	return p.uncleanShutdownWipe(ctx)
}

// newIdentifierComponent converts an allocation identifier to a
// pathname component, rejecting identifiers that would cause the
// allocation to be placed outside the storage root.
func newIdentifierComponent(identifier string) (path.Component, error) {
	component, ok := path.NewComponent(identifier)
	if !ok {
		return path.Component{}, status.Errorf(codes.InvalidArgument, "Identifier %#v is not a valid filename", identifier)
	}
	return component, nil
}
