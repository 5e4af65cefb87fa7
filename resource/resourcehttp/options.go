package resourcehttp

import "time"

const (
	// DefaultAccept is the Accept header sent with fetches when no override
	// is configured.
	DefaultAccept = "application/hal+json, application/json"

	// DefaultTimeout is the request timeout applied to internally created
	// HTTP clients.
	DefaultTimeout = 30 * time.Second
)

// Options stores the configuration of a Fetcher.
type Options struct {
	// Accept is the Accept header value sent with every fetch.  If unset,
	// DefaultAccept is used.
	Accept string `json:"accept"`

	// Timeout is the request timeout for the HTTP client created when New is
	// given no client of its own.  If unset, DefaultTimeout is used.
	Timeout time.Duration `json:"timeout"`

	// RetryCount is the number of times a fetch is reattempted after a
	// temporary failure.  If nonpositive, fetches are never retried.
	RetryCount int `json:"retryCount"`
}

func (o *Options) accept() string {
	if o != nil && len(o.Accept) > 0 {
		return o.Accept
	}

	return DefaultAccept
}

func (o *Options) timeout() time.Duration {
	if o != nil && o.Timeout > 0 {
		return o.Timeout
	}

	return DefaultTimeout
}

func (o *Options) retryCount() int {
	if o != nil && o.RetryCount > 0 {
		return o.RetryCount
	}

	return 0
}
