package message

// Response is the canonical result of an HTTP exchange. Its header
// collection always contains exactly one content-type entry; the
// response translator synthesizes one when the transport did not
// surface it as a discrete header.
type Response struct {
	// Code is the validated HTTP status code.
	Code ResponseCode
	// Headers are the response headers, content-type entry included.
	Headers Headers
	// Body is the raw response payload (may be empty).
	Body RawBody
}

// ContentType returns the content-type header value.
func (r *Response) ContentType() ContentType {
	v, _ := r.Headers.Get("Content-Type")
	return ContentType(v)
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.Code >= 200 && r.Code < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.Code >= 400
}
