//go:build windows

package filesystem

import (
	"math"

	"github.com/buildbarn/bb-storage/pkg/util"

	"golang.org/x/sys/windows"
)

type systemUsableSpaceQuerier struct{}

func (systemUsableSpaceQuerier) GetUsableSpace(path string) (int64, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, util.StatusWrapf(err, "Invalid path %#v", path)
	}
	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return 0, util.StatusWrapf(err, "Failed to obtain free disk space of %#v", path)
	}
	if freeBytesAvailable > math.MaxInt64 {
		return math.MaxInt64, nil
	}
	return int64(freeBytesAvailable), nil
}

// SystemUsableSpaceQuerier obtains the amount of usable space by
// calling GetDiskFreeSpaceEx() on the locally running operating system.
var SystemUsableSpaceQuerier UsableSpaceQuerier = systemUsableSpaceQuerier{}
