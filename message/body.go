package message

// RawBody is an opaque request or response payload. A body of length
// zero means "no body"; the outbound translation never produces an
// entity with an empty payload.
type RawBody []byte

// IsEmpty reports whether the body carries no payload.
func (b RawBody) IsEmpty() bool {
	return len(b) == 0
}

// String returns the body as a string, for logging and assertions.
func (b RawBody) String() string {
	return string(b)
}
