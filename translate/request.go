package translate

import (
	"fmt"
	"net/url"

	"github.com/bobpace/newman/message"
	"github.com/bobpace/newman/transport"
)

// BuildRequest constructs an engine-native request from the canonical
// description. Protected headers are dropped, and a zero-length body
// translates to no entity at all. For a non-empty body, the entity
// content type comes from the unfiltered headers, falling back to def.
func BuildRequest(method message.Method, rawURL string, headers message.Headers, body message.RawBody, def message.ContentType) (*transport.Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("translate: parse url: %w", err)
	}

	req := &transport.Request{
		Method:  method.String(),
		URL:     u,
		Headers: FilterHeaders(headers),
	}

	if !body.IsEmpty() {
		req.Entity = &transport.Entity{
			ContentType: ResolveContentType(headers, def).String(),
			Body:        body,
		}
	}

	return req, nil
}
