// Package message defines the canonical, transport-agnostic HTTP
// request/response model: ordered header collections with
// case-insensitive lookup, raw bodies, the supported method set,
// validated response codes, and content types.
//
// The types here are plain values. Translation to and from an engine's
// native representation lives in the translate package; issuing requests
// lives in the client package.
package message
