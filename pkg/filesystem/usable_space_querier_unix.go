//go:build darwin || freebsd || linux

package filesystem

import (
	"math"

	"github.com/buildbarn/bb-storage/pkg/util"

	"golang.org/x/sys/unix"
)

type systemUsableSpaceQuerier struct{}

func (systemUsableSpaceQuerier) GetUsableSpace(path string) (int64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, util.StatusWrapf(err, "Failed to obtain file system statistics of %#v", path)
	}
	// Only count blocks that are available to unprivileged users.
	// Blocks reserved for the superuser cannot be used by the
	// worker.
	blockSize := uint64(stat.Bsize)
	available := availableBlocks(&stat)
	if blockSize != 0 && available > math.MaxInt64/blockSize {
		return math.MaxInt64, nil
	}
	return int64(available * blockSize), nil
}

// SystemUsableSpaceQuerier obtains the amount of usable space by
// calling statfs() on the locally running operating system.
var SystemUsableSpaceQuerier UsableSpaceQuerier = systemUsableSpaceQuerier{}
