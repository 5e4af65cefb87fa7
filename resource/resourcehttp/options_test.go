package resourcehttp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsDefaults(t *testing.T) {
	assert := assert.New(t)

	for _, o := range []*Options{nil, new(Options)} {
		assert.Equal(DefaultAccept, o.accept())
		assert.Equal(DefaultTimeout, o.timeout())
		assert.Zero(o.retryCount())
	}
}

func TestOptions(t *testing.T) {
	assert := assert.New(t)

	o := &Options{
		Accept:     "application/json",
		Timeout:    15 * time.Second,
		RetryCount: 3,
	}

	assert.Equal("application/json", o.accept())
	assert.Equal(15*time.Second, o.timeout())
	assert.Equal(3, o.retryCount())

	o.RetryCount = -1
	assert.Zero(o.retryCount())
}
