package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNoFetcher(t *testing.T) {
	assert := assert.New(t)

	e := NewEntryPoint("http://example.com", "self")
	r, err := e.Resolve(nil)
	assert.Nil(r)
	assert.Equal(ErrNoFetcher, err)
}

func TestResolve(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		fetcher = new(mockFetcher)
		e       = NewEntryPoint("http://example.com/things/1", "self")
	)

	fetcher.On("Fetch", "http://example.com/things/1").Return(
		Object{
			"name": "thing one",
			"links": map[string]interface{}{
				"href": "http://example.com/things/2",
				"rel":  "next",
			},
		},
		error(nil),
	).Once()

	r, err := e.Resolve(fetcher)
	require.NoError(err)
	require.NotNil(r)

	name, err := r.GetString("name")
	assert.NoError(err)
	assert.Equal("thing one", name)

	next, err := r.Link("next")
	require.NoError(err)
	require.NotNil(next)
	assert.Equal("http://example.com/things/2", next.Href())

	fetcher.AssertExpectations(t)
}

func TestResolveFetcherError(t *testing.T) {
	var (
		assert = assert.New(t)

		expectedError = errors.New("expected fetcher error")
		fetcher       = new(mockFetcher)
		e             = NewEntryPoint("http://example.com/broken", "self")
	)

	fetcher.On("Fetch", "http://example.com/broken").Return(nil, expectedError).Once()

	r, err := e.Resolve(fetcher)
	assert.Nil(r)

	// the collaborator's error surfaces unchanged
	assert.Equal(expectedError, err)
	assert.Equal(Unknown, GetReason(err))

	fetcher.AssertExpectations(t)
}

func TestResolveNoObject(t *testing.T) {
	var (
		assert = assert.New(t)

		fetcher = new(mockFetcher)
		e       = NewEntryPoint("http://example.com/empty", "self")
	)

	fetcher.On("Fetch", "http://example.com/empty").Return(nil, error(nil)).Once()

	r, err := e.Resolve(fetcher)
	assert.Nil(r)
	assert.Equal(NotObject, GetReason(err))

	fetcher.AssertExpectations(t)
}
