package campusguide

import (
	"context"
	"time"
)

// Guide answers free-form questions about the campus.
type Guide interface {
	// Ask answers a natural language question using the campus catalog.
	// Returns EINVALID if the question is blank.
	Ask(ctx context.Context, question string) (string, error)
}

// SearchObserver records the outcome of catalog searches and asset reads.
type SearchObserver interface {
	ObserveSearch(pass MatchPass, err error, duration time.Duration)
	ObserveAsset(err error)
}
