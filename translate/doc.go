// Package translate converts between the canonical message model and
// the engine-native transport model.
//
// Outbound, BuildRequest filters protected headers, resolves the
// payload content type, and produces a native request. Inbound,
// ToCanonical validates the status code and reconstructs a canonical
// response whose headers always carry exactly one content-type entry.
// Translation is all-or-nothing: a response that cannot be fully
// translated yields an *Error and no partial value.
package translate
