package cleaner

import (
	"context"
)

// Cleaner is a function that cleans up some resource provided by the
// operating system, such as temporary storage left behind by a process
// that is no longer running.
type Cleaner func(ctx context.Context) error
