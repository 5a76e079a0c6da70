//go:build darwin || linux

package filesystem

import (
	"golang.org/x/sys/unix"
)

func availableBlocks(stat *unix.Statfs_t) uint64 {
	return stat.Bavail
}
