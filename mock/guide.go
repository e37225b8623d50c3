package mock

import (
	"context"
	"time"

	"github.com/fwojciec/campusguide"
)

var _ campusguide.Guide = (*Guide)(nil)

// Guide is a mock implementation of campusguide.Guide.
type Guide struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (g *Guide) Ask(ctx context.Context, question string) (string, error) {
	return g.AskFn(ctx, question)
}

var _ campusguide.SearchObserver = (*SearchObserver)(nil)

// SearchObserver is a mock implementation of campusguide.SearchObserver.
// Nil functions are ignored.
type SearchObserver struct {
	ObserveSearchFn func(pass campusguide.MatchPass, err error, duration time.Duration)
	ObserveAssetFn  func(err error)
}

func (o *SearchObserver) ObserveSearch(pass campusguide.MatchPass, err error, duration time.Duration) {
	if o.ObserveSearchFn != nil {
		o.ObserveSearchFn(pass, err, duration)
	}
}

func (o *SearchObserver) ObserveAsset(err error) {
	if o.ObserveAssetFn != nil {
		o.ObserveAssetFn(err)
	}
}
