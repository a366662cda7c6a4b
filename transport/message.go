package transport

import "net/url"

// Header is a raw wire header forwarded verbatim by an engine.
type Header struct {
	Name  string
	Value string
}

// Entity is a payload with its media type. Engines derive framing
// headers (content length, transfer encoding) from it themselves.
type Entity struct {
	ContentType string
	Body        []byte
}

// Request is the engine-native request form. It is created by the
// request translator and consumed entirely within one Submit call.
type Request struct {
	Method  string
	URL     *url.URL
	Headers []Header
	// Entity is nil when the request carries no payload.
	Entity *Entity
}

// Response is the engine-native response form. Engines surface the
// payload and its media type through Entity; a discrete content-type
// header never appears in Headers.
type Response struct {
	StatusCode int
	Headers    []Header
	// Entity is non-nil on any well-formed engine response, even when
	// the payload is empty.
	Entity *Entity
}
