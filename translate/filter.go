package translate

import (
	"strings"

	"github.com/bobpace/newman/message"
	"github.com/bobpace/newman/transport"
)

// protectedNames are header names the transport engine derives or
// controls itself, from body presence, explicit content-type handling,
// or protocol framing. Forwarding them would be rejected or silently
// ignored, so the filter drops them by name regardless of value.
var protectedNames = map[string]struct{}{
	"connection":        {},
	"content-length":    {},
	"content-type":      {},
	"date":              {},
	"server":            {},
	"transfer-encoding": {},
	"user-agent":        {},
}

// Protected reports whether name (case-insensitive) is managed by the
// transport engine and must not be forwarded.
func Protected(name string) bool {
	_, ok := protectedNames[strings.ToLower(name)]
	return ok
}

// FilterHeaders converts canonical headers into native headers,
// dropping protected names and preserving the order and casing of the
// rest. A nil collection yields an empty slice.
func FilterHeaders(headers message.Headers) []transport.Header {
	out := make([]transport.Header, 0, len(headers))
	for _, h := range headers {
		if Protected(h.Name) {
			continue
		}
		out = append(out, transport.Header{Name: h.Name, Value: h.Value})
	}
	return out
}
