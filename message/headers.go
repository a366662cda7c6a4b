package message

import "strings"

// Header is a single name/value pair.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered collection of header pairs. A nil Headers means
// no headers were supplied, which is distinct from an empty collection.
// Names are matched case-insensitively on lookup; the order and casing
// of provided headers are preserved on output.
type Headers []Header

// NewHeaders builds a header collection from name/value pairs in order.
// It panics if pairs has an odd length.
func NewHeaders(pairs ...string) Headers {
	if len(pairs)%2 != 0 {
		panic("message: NewHeaders requires an even number of arguments")
	}
	h := make(Headers, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		h = append(h, Header{Name: pairs[i], Value: pairs[i+1]})
	}
	return h
}

// Get returns the value of the first header matching name
// (case-insensitive) and whether such a header exists.
func (h Headers) Get(name string) (string, bool) {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return hdr.Value, true
		}
	}
	return "", false
}

// Values returns all values for headers matching name (case-insensitive),
// in the order they appear.
func (h Headers) Values(name string) []string {
	var values []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			values = append(values, hdr.Value)
		}
	}
	return values
}

// Contains reports whether a header with the given name exists
// (case-insensitive).
func (h Headers) Contains(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Prepend returns a new collection with the given pair placed first.
// The receiver is not modified.
func (h Headers) Prepend(name, value string) Headers {
	out := make(Headers, 0, len(h)+1)
	out = append(out, Header{Name: name, Value: value})
	return append(out, h...)
}
