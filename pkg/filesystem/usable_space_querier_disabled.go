//go:build !darwin && !freebsd && !linux && !windows

package filesystem

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type systemUsableSpaceQuerier struct{}

func (systemUsableSpaceQuerier) GetUsableSpace(path string) (int64, error) {
	return 0, status.Error(codes.Unimplemented, "Obtaining usable space is not supported on this platform")
}

// SystemUsableSpaceQuerier corresponds with the file systems of the
// locally running operating system. On this operating system, this
// functionality is not available. As admission checks fail closed, no
// temporary storage will be handed out.
var SystemUsableSpaceQuerier UsableSpaceQuerier = systemUsableSpaceQuerier{}
