package tmpstorage

import (
	"context"
)

// Provider of temporary storage on local disk. Every allocation is a
// directory named after an identifier chosen by the caller, placed
// underneath a storage root that is exclusively owned by the Provider.
//
// The directory hierarchy itself is the only state. No record of
// allocations is kept in memory, meaning that allocations left behind
// by a process that terminated abnormally can only be reclaimed by
// calling CleanupLocalTmpStorage() or
// CleanupLocalTmpStorageInCaseOfUncleanShutdown().
//
// Calls for different identifiers may be made concurrently. Calls for
// the same identifier must be serialized by the caller.
type Provider interface {
	// TryGetLocalTmpStorage returns the path of a directory that
	// the caller may use to store up to roughly requestedSizeBytes
	// of data. If there is insufficient free space, admitted is
	// set to false and no error is returned. Errors are only
	// returned in case of invalid arguments or file system
	// failures.
	//
	// Calling this method for an identifier for which a directory
	// already exists returns the existing directory.
	TryGetLocalTmpStorage(ctx context.Context, identifier string, requestedSizeBytes int64) (path string, admitted bool, err error)

	// CleanupLocalTmpStorage recursively removes the directory
	// associated with an identifier. Removing a directory that
	// does not exist is not an error.
	CleanupLocalTmpStorage(ctx context.Context, identifier string) error

	// CleanupLocalTmpStorageInCaseOfUncleanShutdown removes all
	// allocations. It should be called once at startup, before any
	// storage is handed out, to reclaim directories left behind by
	// a previous instance of the process that did not clean up
	// after itself.
	CleanupLocalTmpStorageInCaseOfUncleanShutdown(ctx context.Context) error
}
