package resourcehttp

import (
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/go-kit/kit/log"
	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/hypermedia/logging"
	"github.com/xmidt-org/hypermedia/resource"
)

var (
	// jsonHandle is the internal package singleton used to parse fetched JSON documents
	jsonHandle codec.Handle = &codec.JsonHandle{
		BasicHandle: codec.BasicHandle{
			DecodeOptions: codec.DecodeOptions{
				MapType: reflect.TypeOf((resource.Object)(nil)),
			},
		},
	}
)

// Client is an interface implemented by net/http.Client
type Client interface {
	Do(*http.Request) (*http.Response, error)
}

var _ Client = (*http.Client)(nil)

// New produces a resource.Fetcher that dereferences addresses with plain HTTP
// GET requests and decodes the response bodies as JSON objects.  Responses
// outside the 2xx family become *Error values, and a positive retry count in
// the options reattempts fetches that fail with a temporary error.
//
// The logger and options may be nil.  When client is nil, an http.Client with
// the configured request timeout is used.
func New(logger log.Logger, o *Options, client Client) resource.Fetcher {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	if client == nil {
		client = &http.Client{Timeout: o.timeout()}
	}

	transactor := requireSuccess(client.Do)
	if retryCount := o.retryCount(); retryCount > 0 {
		transactor = RetryTransactor(logger, retryCount, nil, transactor)
	}

	return &fetcher{
		logger:     logger,
		accept:     o.accept(),
		transactor: transactor,
	}
}

// fetcher is the internal resource.Fetcher implementation
type fetcher struct {
	logger     log.Logger
	accept     string
	transactor func(*http.Request) (*http.Response, error)
}

func (f *fetcher) Fetch(address string) (resource.Object, error) {
	request, err := http.NewRequest(http.MethodGet, address, nil)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Accept", f.accept)
	logging.Debug(f.logger).Log(logging.MessageKey(), "fetching resource", logging.HrefKey(), address)

	response, err := f.transactor(request)
	if err != nil {
		logging.Error(f.logger).Log(logging.MessageKey(), "fetch failed", logging.HrefKey(), address, logging.ErrorKey(), err)
		return nil, err
	}

	defer response.Body.Close()
	var o resource.Object
	if err := codec.NewDecoder(response.Body, jsonHandle).Decode(&o); err != nil {
		logging.Error(f.logger).Log(logging.MessageKey(), "could not decode fetched document", logging.HrefKey(), address, logging.ErrorKey(), err)
		return nil, err
	}

	return o, nil
}

// requireSuccess decorates a transactor so that any response outside the 2xx
// family is drained, closed, and converted into an *Error.
func requireSuccess(next func(*http.Request) (*http.Response, error)) func(*http.Request) (*http.Response, error) {
	return func(request *http.Request) (*http.Response, error) {
		response, err := next(request)
		if err != nil {
			return nil, err
		}

		if response.StatusCode >= 200 && response.StatusCode < 300 {
			return response, nil
		}

		io.Copy(io.Discard, response.Body)
		response.Body.Close()

		return nil, &Error{
			Code: response.StatusCode,
			Text: fmt.Sprintf("fetch of %s returned status %d", request.URL.String(), response.StatusCode),
		}
	}
}
