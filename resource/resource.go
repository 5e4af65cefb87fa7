package resource

import (
	"sync"

	"github.com/spf13/cast"
)

// Object represents an arbitrary decoded JSON object, as produced by any JSON
// decoder configured to unmarshal objects into maps.  An Object is the only
// JSON shape from which a Resource can be built.
type Object map[string]interface{}

// Resource wraps a decoded JSON object, exposing its keys as read-only,
// recursively converted attributes together with a normalized view of the
// object's hypermedia links.
//
// A Resource is immutable after construction.  The one piece of deferred
// state, the link collection, is published exactly once and is safe for
// concurrent first access.
type Resource struct {
	raw        Object
	attributes map[string]interface{}

	linksOnce sync.Once
	links     []EntryPoint
	linksErr  error
}

// New constructs a Resource from a decoded JSON value.  The value must be a
// non-nil object; any other shape (array, string, number, boolean, or nil)
// fails with a NotObject error and no Resource is produced.
//
// Construction is eager and recursive: every nested object in the value
// becomes its own Resource immediately.  Only the link collection is deferred
// until the first call to Links or Link.
func New(value interface{}) (*Resource, error) {
	switch v := value.(type) {
	case Object:
		if v == nil {
			break
		}

		return newResource(v), nil

	case map[string]interface{}:
		if v == nil {
			break
		}

		return newResource(Object(v)), nil
	}

	return nil, &Error{Value: value, R: NotObject}
}

// newResource builds a Resource from an object known to be valid
func newResource(raw Object) *Resource {
	r := &Resource{
		raw:        raw,
		attributes: make(map[string]interface{}, len(raw)),
	}

	for name, value := range raw {
		r.attributes[name] = Convert(value)
	}

	return r
}

// Raw returns the original decoded JSON object this Resource was built from.
// The returned map must be treated as read-only.
func (r *Resource) Raw() Object {
	return r.raw
}

// Get returns the converted attribute stored under the given name.  Attribute
// names are exactly the keys of the original object; any other name fails
// with a NoSuchAttribute error.
//
// Data attributes and this fixed method set occupy separate namespaces, so a
// key such as "links" is readable through Get without shadowing the Links
// method.
func (r *Resource) Get(name string) (interface{}, error) {
	v, ok := r.attributes[name]
	if !ok {
		return nil, &Error{Value: name, R: NoSuchAttribute}
	}

	return v, nil
}

// GetString is Get with the attribute coerced to a string.
func (r *Resource) GetString(name string) (string, error) {
	v, err := r.Get(name)
	if err != nil {
		return "", err
	}

	return cast.ToStringE(v)
}

// GetBool is Get with the attribute coerced to a bool.
func (r *Resource) GetBool(name string) (bool, error) {
	v, err := r.Get(name)
	if err != nil {
		return false, err
	}

	return cast.ToBoolE(v)
}

// GetInt64 is Get with the attribute coerced to an int64.
func (r *Resource) GetInt64(name string) (int64, error) {
	v, err := r.Get(name)
	if err != nil {
		return 0, err
	}

	return cast.ToInt64E(v)
}

// GetFloat64 is Get with the attribute coerced to a float64.
func (r *Resource) GetFloat64(name string) (float64, error) {
	v, err := r.Get(name)
	if err != nil {
		return 0, err
	}

	return cast.ToFloat64E(v)
}
