package filesystem

import (
	"golang.org/x/sys/unix"
)

// availableBlocks returns the number of blocks available to
// unprivileged users. Bavail is signed on FreeBSD, where it becomes
// negative when the blocks reserved for the superuser are in use.
func availableBlocks(stat *unix.Statfs_t) uint64 {
	if stat.Bavail < 0 {
		return 0
	}
	return uint64(stat.Bavail)
}
