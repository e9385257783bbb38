package agent

// Args is the argument bag extracted from a query. Field presence matters:
// a missing field and a present-but-invalid one are different error
// conditions, so extraction failures are recorded per field instead of
// dropping silently.
type Args struct {
	// Fields maps field name to an extracted string, float64, int64 or bool.
	Fields map[string]any

	// Errors maps field name to the extraction failure for that field
	// (e.g. a labeled number that did not parse). The dispatcher decides
	// whether the failure is fatal for the matched intent.
	Errors map[string]string
}

// NewArgs returns an empty argument bag.
func NewArgs() Args {
	return Args{
		Fields: make(map[string]any),
		Errors: make(map[string]string),
	}
}

// Set stores a field value.
func (a Args) Set(name string, value any) {
	a.Fields[name] = value
}

// SetError records an extraction failure for a field.
func (a Args) SetError(name, msg string) {
	a.Errors[name] = msg
}

// Has reports whether the field was extracted successfully.
func (a Args) Has(name string) bool {
	_, ok := a.Fields[name]
	return ok
}

// String returns a string field.
func (a Args) String(name string) (string, bool) {
	v, ok := a.Fields[name].(string)
	return v, ok
}

// Number returns a numeric field.
func (a Args) Number(name string) (float64, bool) {
	v, ok := a.Fields[name].(float64)
	return v, ok
}

// Int returns an integer field.
func (a Args) Int(name string) (int64, bool) {
	v, ok := a.Fields[name].(int64)
	return v, ok
}

// Bool returns a boolean field.
func (a Args) Bool(name string) (bool, bool) {
	v, ok := a.Fields[name].(bool)
	return v, ok
}
