package resource

// LinksKey is the object key whose value holds the hypermedia links of a Resource.
const LinksKey = "links"

// link element keys.  A "type" key is tolerated on the wire but not modeled.
const (
	hrefKey = "href"
	relKey  = "rel"
)

// EntryPoint is one hypermedia link: a target address paired with the relation
// name describing its role, e.g. "self" or "next".  EntryPoints are immutable
// values and are never shared across Resources.
type EntryPoint struct {
	href string
	rel  string
}

// NewEntryPoint produces an EntryPoint for a known address and relation name.
// This is how navigation is bootstrapped before any Resource exists, such as
// at the root URL of an API.
func NewEntryPoint(href, rel string) EntryPoint {
	return EntryPoint{
		href: href,
		rel:  rel,
	}
}

// Href returns the target address of this link.
func (e EntryPoint) Href() string {
	return e.href
}

// Rel returns the relation name of this link.
func (e EntryPoint) Rel() string {
	return e.rel
}

// Links returns the normalized link collection of this Resource, computing it
// from the underlying object's "links" value on first use.  The computation
// happens exactly once per Resource: both the collection and any
// MalformedLink failure are cached, and later calls observe the same result
// even if the underlying object has been mutated since.
//
// A Resource without a "links" key has an empty collection, not an error.
func (r *Resource) Links() ([]EntryPoint, error) {
	r.linksOnce.Do(func() {
		r.links, r.linksErr = parseLinks(r.raw[LinksKey])
	})

	return r.links, r.linksErr
}

// Link returns the first EntryPoint in the normalized collection whose
// relation name is exactly rel.  Matching is case-sensitive, and when
// relation names repeat the first match in normalized order wins.
//
// A nil EntryPoint with a nil error means the collection parsed successfully
// but held no match.
func (r *Resource) Link(rel string) (*EntryPoint, error) {
	links, err := r.Links()
	if err != nil {
		return nil, err
	}

	for i := range links {
		if links[i].rel == rel {
			return &links[i], nil
		}
	}

	return nil, nil
}

// parseLinks normalizes a raw links value into an ordered EntryPoint
// collection.  A missing or null value is an empty collection, a single link
// object is a one-element collection, and an array of link objects preserves
// its order.  Anything else is a MalformedLink error.
func parseLinks(value interface{}) ([]EntryPoint, error) {
	switch v := value.(type) {
	case nil:
		return []EntryPoint{}, nil

	case Object:
		return parseSingle(v)

	case map[string]interface{}:
		return parseSingle(Object(v))

	case []interface{}:
		links := make([]EntryPoint, 0, len(v))
		for _, element := range v {
			var raw Object
			switch e := element.(type) {
			case Object:
				raw = e
			case map[string]interface{}:
				raw = Object(e)
			default:
				return nil, &Error{Value: element, R: MalformedLink}
			}

			link, err := parseLink(raw)
			if err != nil {
				return nil, err
			}

			links = append(links, link)
		}

		return links, nil

	default:
		return nil, &Error{Value: value, R: MalformedLink}
	}
}

func parseSingle(raw Object) ([]EntryPoint, error) {
	link, err := parseLink(raw)
	if err != nil {
		return nil, err
	}

	return []EntryPoint{link}, nil
}

// parseLink validates one link object, which must carry non-empty href and
// rel strings.  The error carries the offending element.
func parseLink(raw Object) (EntryPoint, error) {
	href, ok := raw[hrefKey].(string)
	if !ok || len(href) == 0 {
		return EntryPoint{}, &Error{Value: raw, R: MalformedLink}
	}

	rel, ok := raw[relKey].(string)
	if !ok || len(rel) == 0 {
		return EntryPoint{}, &Error{Value: raw, R: MalformedLink}
	}

	return EntryPoint{href: href, rel: rel}, nil
}
