package tmpstorage

import (
	"log"

	"github.com/buildbarn/bb-local-tmp-storage/pkg/filesystem"
)

// AdmissionChecker decides whether a request for temporary storage of
// a given size may be granted on the file system containing a given
// path.
type AdmissionChecker interface {
	TryAdmit(path string, requestedSizeBytes int64) bool
}

type minimumFreeSpaceAdmissionChecker struct {
	usableSpaceQuerier    filesystem.UsableSpaceQuerier
	minimumFreeSpaceBytes int64
}

// NewMinimumFreeSpaceAdmissionChecker creates an AdmissionChecker that
// only admits requests if the file system would still have more than
// minimumFreeSpaceBytes of usable space left after the requested amount
// of space is consumed.
//
// The amount of usable space is obtained at the time of the call. As
// space is not reserved, other processes may still consume it between
// admission and the caller writing its data.
func NewMinimumFreeSpaceAdmissionChecker(usableSpaceQuerier filesystem.UsableSpaceQuerier, minimumFreeSpaceBytes int64) AdmissionChecker {
	return &minimumFreeSpaceAdmissionChecker{
		usableSpaceQuerier:    usableSpaceQuerier,
		minimumFreeSpaceBytes: minimumFreeSpaceBytes,
	}
}

func (ac *minimumFreeSpaceAdmissionChecker) TryAdmit(path string, requestedSizeBytes int64) bool {
	if requestedSizeBytes < 0 {
		return false
	}
	usableSpaceBytes, err := ac.usableSpaceQuerier.GetUsableSpace(path)
	if err != nil {
		// Fail closed. Not being able to determine the amount
		// of free space should never lead to unmetered use.
		log.Printf("Failed to obtain usable space of %#v, rejecting request for %d bytes: %s", path, requestedSizeBytes, err)
		return false
	}
	if usableSpaceBytes < requestedSizeBytes {
		return false
	}
	return usableSpaceBytes-requestedSizeBytes > ac.minimumFreeSpaceBytes
}
