package translate

import (
	"strings"

	"github.com/bobpace/newman/message"
)

// ResolveContentType returns the first content-type header whose value
// parses as a media type. When headers are absent, no such header
// exists, or no value parses, it returns def. Unparsable values are
// treated as absent rather than as errors.
func ResolveContentType(headers message.Headers, def message.ContentType) message.ContentType {
	for _, h := range headers {
		if !strings.EqualFold(h.Name, "Content-Type") {
			continue
		}
		if ct, err := message.ParseContentType(h.Value); err == nil {
			return ct
		}
	}
	return def
}
