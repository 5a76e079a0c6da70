package aliases

import (
	"context"
)

// This file contains aliases for types for which no mocks can be
// generated directly, such as function types.

// Cleaner is an interface equivalent of cleaner.Cleaner.
type Cleaner interface {
	Call(ctx context.Context) error
}
