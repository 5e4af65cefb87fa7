package resourcehttp

import "net/http"

// Error is an HTTP-specific carrier of error information for failed fetches.
// In addition to implementing error, this type implements go-kit's
// StatusCoder, and its Temporary method marks transient server conditions as
// eligible for retry.
type Error struct {
	Code int
	Text string
}

func (e *Error) StatusCode() int {
	return e.Code
}

func (e *Error) Error() string {
	return e.Text
}

// Temporary returns true for status codes that indicate a transient server
// condition, i.e. any 5xx other than 501 Not Implemented.
func (e *Error) Temporary() bool {
	return e.Code >= 500 && e.Code != http.StatusNotImplemented
}
