package resource

import "errors"

// ErrNoFetcher indicates a Resolve call with a nil Fetcher.
var ErrNoFetcher = errors.New("no fetcher supplied")

// Fetcher is the narrow interface to the HTTP collaborator that dereferences
// link addresses.  Implementations own every transport concern: request
// construction, timeouts, redirects, and decoding the response body into an
// Object.  The resourcehttp subpackage supplies the standard implementation.
type Fetcher interface {
	// Fetch dereferences an address and returns the decoded JSON object
	// found there.
	Fetch(address string) (Object, error)
}

// Resolve follows this link: the fetcher dereferences the href, and the
// decoded object is wrapped in a new Resource.  A fetcher failure is returned
// unchanged, with no retry and no wrapping.
func (e EntryPoint) Resolve(f Fetcher) (*Resource, error) {
	if f == nil {
		return nil, ErrNoFetcher
	}

	o, err := f.Fetch(e.href)
	if err != nil {
		return nil, err
	}

	return New(o)
}
