package message

import "fmt"

// Method is one of the HTTP methods supported by the client facade.
// The set is fixed; the facade exposes one operation per method.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodHead   Method = "HEAD"
)

// Validate checks that the method is one of the supported set.
func (m Method) Validate() error {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodHead:
		return nil
	}
	return fmt.Errorf("message: unsupported method %q", string(m))
}

// String returns the wire form of the method.
func (m Method) String() string {
	return string(m)
}
