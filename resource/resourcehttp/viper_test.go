package resourcehttp

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fetcherConfiguration = `{
	"fetcher": {
		"accept": "application/json",
		"timeout": "10s",
		"retryCount": 2
	}
}`

func TestSub(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		v = viper.New()
	)

	assert.Nil(Sub(nil))

	v.SetConfigType("json")
	require.NoError(v.ReadConfig(strings.NewReader(fetcherConfiguration)))
	assert.NotNil(Sub(v))
}

func TestFromViper(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		v = viper.New()
	)

	v.SetConfigType("json")
	require.NoError(v.ReadConfig(strings.NewReader(fetcherConfiguration)))

	o, err := FromViper(Sub(v))
	require.NoError(err)
	require.NotNil(o)

	assert.Equal("application/json", o.Accept)
	assert.Equal(10*time.Second, o.Timeout)
	assert.Equal(2, o.RetryCount)
}

func TestFromViperNil(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	o, err := FromViper(nil)
	require.NoError(err)
	require.NotNil(o)

	assert.Equal(DefaultAccept, o.accept())
	assert.Equal(DefaultTimeout, o.timeout())
	assert.Zero(o.retryCount())
}
