package resource

// Convert maps a decoded JSON value onto its resource-graph form: objects
// become Resources, arrays become new slices with each element converted in
// turn, and scalars pass through unchanged.
//
// Convert is pure and deterministic, and it cannot fail: unlike New, it
// accepts any JSON shape.  Identical input always produces a graph with the
// same shape and attribute values.
func Convert(value interface{}) interface{} {
	switch v := value.(type) {
	case Object:
		return newResource(v)

	case map[string]interface{}:
		return newResource(Object(v))

	case []interface{}:
		converted := make([]interface{}, len(v))
		for i, element := range v {
			converted[i] = Convert(element)
		}

		return converted

	default:
		return value
	}
}
