package resourcemetric

import (
	"github.com/go-kit/kit/metrics"
	"github.com/xmidt-org/hypermedia/resource"
)

const (
	// OutcomeLabel is the label under which each fetch outcome is recorded
	OutcomeLabel = "outcome"

	// SuccessValue is the OutcomeLabel value for fetches that produced an object
	SuccessValue = "success"

	// FailureValue is the OutcomeLabel value for fetches that returned an error
	FailureValue = "failure"
)

// Instrument decorates a Fetcher so that every fetch increments counter with
// an OutcomeLabel of SuccessValue or FailureValue.
//
// Note: the counter must have OutcomeLabel as one of its labels.
func Instrument(counter metrics.Counter, next resource.Fetcher) resource.Fetcher {
	return &instrumentedFetcher{
		counter: counter,
		next:    next,
	}
}

// instrumentedFetcher is the internal resource.Fetcher decorator
type instrumentedFetcher struct {
	counter metrics.Counter
	next    resource.Fetcher
}

func (f *instrumentedFetcher) Fetch(address string) (resource.Object, error) {
	o, err := f.next.Fetch(address)
	if err != nil {
		f.counter.With(OutcomeLabel, FailureValue).Add(1.0)
		return nil, err
	}

	f.counter.With(OutcomeLabel, SuccessValue).Add(1.0)
	return o, nil
}
