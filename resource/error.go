package resource

import "fmt"

// Reason classifies the failures this package produces on its own.  Fetcher
// failures surfaced by EntryPoint.Resolve are never classified here; they
// pass through unchanged.
type Reason int

const (
	// Unknown is the classification of a nil error or of an error produced
	// outside this package.
	Unknown Reason = iota

	// NotObject indicates an attempt to build a Resource from a JSON value
	// that is not an object.
	NotObject

	// MalformedLink indicates a links value that is neither a link object nor
	// an array of link objects, or a link object missing href or rel.
	MalformedLink

	// NoSuchAttribute indicates an attribute read for a name not present in
	// the original object.
	NoSuchAttribute
)

func (r Reason) String() string {
	switch r {
	case NotObject:
		return "not-object"
	case MalformedLink:
		return "malformed-link"
	case NoSuchAttribute:
		return "no-such-attribute"
	default:
		return "unknown"
	}
}

// Reasoner is implemented by errors that carry a Reason.
type Reasoner interface {
	Reason() Reason
}

// GetReason examines an error for Reason information.
//
//	If err is nil, Unknown is returned
//	If err implements Reasoner, the result of the Reason method is returned
//	Otherwise, Unknown is returned
func GetReason(err error) Reason {
	if err == nil {
		return Unknown
	}

	// nolint:errorlint
	if r, ok := err.(Reasoner); ok {
		return r.Reason()
	}

	return Unknown
}

// Error carries a Reason together with the offending value: the non-object a
// Resource was built from, the link element missing a required key, or the
// name of an unknown attribute.
type Error struct {
	Value interface{}
	R     Reason
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.R, e.Value)
}

func (e *Error) Reason() Reason {
	return e.R
}
