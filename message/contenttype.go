package message

import (
	"fmt"
	"mime"
	"strings"
)

// ContentType is a media type string such as "application/json" or
// "text/plain; charset=utf-8". The original value, including any
// parameters, is preserved.
type ContentType string

// ParseContentType validates s as a type/subtype media type and
// returns it.
func ParseContentType(s string) (ContentType, error) {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return "", fmt.Errorf("message: invalid content type %q: %w", s, err)
	}
	if !strings.Contains(mt, "/") {
		return "", fmt.Errorf("message: invalid content type %q: missing subtype", s)
	}
	return ContentType(s), nil
}

// MediaType returns the type/subtype portion without parameters,
// lowercased. It returns "" if the value does not parse.
func (c ContentType) MediaType() string {
	mt, _, err := mime.ParseMediaType(string(c))
	if err != nil || !strings.Contains(mt, "/") {
		return ""
	}
	return mt
}

// String returns the full content type value.
func (c ContentType) String() string {
	return string(c)
}
