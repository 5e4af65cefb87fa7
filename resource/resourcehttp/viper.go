package resourcehttp

import (
	"github.com/spf13/viper"
)

const (
	// FetcherKey is the Viper subkey under which fetcher configuration should
	// be stored.  FromViper *does not* assume this key.
	FetcherKey = "fetcher"
)

// Sub returns the standard child Viper, using FetcherKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(FetcherKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}
