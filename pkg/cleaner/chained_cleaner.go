package cleaner

import (
	"context"
	"log"
)

// NewChainedCleaner creates a new Cleaner that invokes a series of
// existing Cleaner objects sequentially. If any of them fail, the first
// observed error is returned. Errors of subsequent cleaners are logged.
func NewChainedCleaner(cleaners []Cleaner) Cleaner {
	return func(ctx context.Context) error {
		var chainedErr error
		for _, cleaner := range cleaners {
			if err := cleaner(ctx); chainedErr == nil {
				chainedErr = err
			} else if err != nil {
				log.Print("Cleaner failed: ", err)
			}
		}
		return chainedErr
	}
}
