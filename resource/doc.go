/*
Package resource models a hypermedia API response as a navigable object graph.

A Resource wraps one decoded JSON object and exposes each key as a read-only
attribute.  Conversion is eager and recursive: nested objects become Resources
of their own, arrays are converted element-wise, and scalars pass through
unchanged.  The optional "links" value of an object is normalized on first use
into an ordered collection of EntryPoints, which may be filtered by relation
name and resolved into new Resources through a Fetcher.

This package performs no I/O of its own.  The single outbound boundary is the
Fetcher interface; the resourcehttp subpackage supplies the standard
implementation over net/http.
*/
package resource
