package message

import (
	"errors"
	"fmt"
)

// ResponseCode is a recognized HTTP status code. Values are constructed
// through ParseResponseCode, which rejects integers outside the
// recognized set instead of clamping them.
type ResponseCode int

// ErrUnrecognizedStatus is returned when an integer does not map to a
// recognized HTTP status code.
var ErrUnrecognizedStatus = errors.New("message: unrecognized status code")

// Recognized status codes.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-status-codes
const (
	StatusContinue           ResponseCode = 100
	StatusSwitchingProtocols ResponseCode = 101

	StatusOK                   ResponseCode = 200
	StatusCreated              ResponseCode = 201
	StatusAccepted             ResponseCode = 202
	StatusNonAuthoritativeInfo ResponseCode = 203
	StatusNoContent            ResponseCode = 204
	StatusResetContent         ResponseCode = 205
	StatusPartialContent       ResponseCode = 206

	StatusMultipleChoices   ResponseCode = 300
	StatusMovedPermanently  ResponseCode = 301
	StatusFound             ResponseCode = 302
	StatusSeeOther          ResponseCode = 303
	StatusNotModified       ResponseCode = 304
	StatusUseProxy          ResponseCode = 305
	StatusTemporaryRedirect ResponseCode = 307
	StatusPermanentRedirect ResponseCode = 308

	StatusBadRequest           ResponseCode = 400
	StatusUnauthorized         ResponseCode = 401
	StatusPaymentRequired      ResponseCode = 402
	StatusForbidden            ResponseCode = 403
	StatusNotFound             ResponseCode = 404
	StatusMethodNotAllowed     ResponseCode = 405
	StatusNotAcceptable        ResponseCode = 406
	StatusProxyAuthRequired    ResponseCode = 407
	StatusRequestTimeout       ResponseCode = 408
	StatusConflict             ResponseCode = 409
	StatusGone                 ResponseCode = 410
	StatusLengthRequired       ResponseCode = 411
	StatusPreconditionFailed   ResponseCode = 412
	StatusContentTooLarge      ResponseCode = 413
	StatusURITooLong           ResponseCode = 414
	StatusUnsupportedMediaType ResponseCode = 415
	StatusRangeNotSatisfiable  ResponseCode = 416
	StatusExpectationFailed    ResponseCode = 417
	StatusTeapot               ResponseCode = 418
	StatusMisdirectedRequest   ResponseCode = 421
	StatusUnprocessableContent ResponseCode = 422
	StatusUpgradeRequired      ResponseCode = 426
	StatusTooManyRequests      ResponseCode = 429

	StatusInternalServerError     ResponseCode = 500
	StatusNotImplemented          ResponseCode = 501
	StatusBadGateway              ResponseCode = 502
	StatusServiceUnavailable      ResponseCode = 503
	StatusGatewayTimeout          ResponseCode = 504
	StatusHTTPVersionNotSupported ResponseCode = 505
)

var reasonPhrases = map[ResponseCode]string{
	StatusContinue:           "Continue",
	StatusSwitchingProtocols: "Switching Protocols",

	StatusOK:                   "OK",
	StatusCreated:              "Created",
	StatusAccepted:             "Accepted",
	StatusNonAuthoritativeInfo: "Non-Authoritative Information",
	StatusNoContent:            "No Content",
	StatusResetContent:         "Reset Content",
	StatusPartialContent:       "Partial Content",

	StatusMultipleChoices:   "Multiple Choices",
	StatusMovedPermanently:  "Moved Permanently",
	StatusFound:             "Found",
	StatusSeeOther:          "See Other",
	StatusNotModified:       "Not Modified",
	StatusUseProxy:          "Use Proxy",
	StatusTemporaryRedirect: "Temporary Redirect",
	StatusPermanentRedirect: "Permanent Redirect",

	StatusBadRequest:           "Bad Request",
	StatusUnauthorized:         "Unauthorized",
	StatusPaymentRequired:      "Payment Required",
	StatusForbidden:            "Forbidden",
	StatusNotFound:             "Not Found",
	StatusMethodNotAllowed:     "Method Not Allowed",
	StatusNotAcceptable:        "Not Acceptable",
	StatusProxyAuthRequired:    "Proxy Authentication Required",
	StatusRequestTimeout:       "Request Timeout",
	StatusConflict:             "Conflict",
	StatusGone:                 "Gone",
	StatusLengthRequired:       "Length Required",
	StatusPreconditionFailed:   "Precondition Failed",
	StatusContentTooLarge:      "Content Too Large",
	StatusURITooLong:           "URI Too Long",
	StatusUnsupportedMediaType: "Unsupported Media Type",
	StatusRangeNotSatisfiable:  "Range Not Satisfiable",
	StatusExpectationFailed:    "Expectation Failed",
	StatusTeapot:               "I'm a teapot",
	StatusMisdirectedRequest:   "Misdirected Request",
	StatusUnprocessableContent: "Unprocessable Content",
	StatusUpgradeRequired:      "Upgrade Required",
	StatusTooManyRequests:      "Too Many Requests",

	StatusInternalServerError:     "Internal Server Error",
	StatusNotImplemented:          "Not Implemented",
	StatusBadGateway:              "Bad Gateway",
	StatusServiceUnavailable:      "Service Unavailable",
	StatusGatewayTimeout:          "Gateway Timeout",
	StatusHTTPVersionNotSupported: "HTTP Version Not Supported",
}

// ParseResponseCode maps an integer to a recognized ResponseCode. It
// fails with ErrUnrecognizedStatus when the integer is not a recognized
// HTTP status code.
func ParseResponseCode(code int) (ResponseCode, error) {
	rc := ResponseCode(code)
	if _, ok := reasonPhrases[rc]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnrecognizedStatus, code)
	}
	return rc, nil
}

// Int returns the numeric status code.
func (c ResponseCode) Int() int {
	return int(c)
}

// Reason returns the reason phrase for the code, or "" when unknown.
func (c ResponseCode) Reason() string {
	return reasonPhrases[c]
}

// String returns the code with its reason phrase, e.g. "201 Created".
func (c ResponseCode) String() string {
	if reason, ok := reasonPhrases[c]; ok {
		return fmt.Sprintf("%d %s", int(c), reason)
	}
	return fmt.Sprintf("%d", int(c))
}
