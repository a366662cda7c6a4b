package translate

import (
	"strings"

	"github.com/bobpace/newman/message"
	"github.com/bobpace/newman/transport"
)

// ToCanonical converts an engine-native response into the canonical
// form. The status code must be a recognized HTTP code and the response
// must carry an entity; otherwise translation fails as a whole and no
// partial response is constructed.
//
// The returned headers contain exactly one content-type entry, placed
// first: the entity's media type when it parses, def otherwise. Stray
// content-type entries among the native headers are discarded.
func ToCanonical(resp *transport.Response, def message.ContentType) (*message.Response, error) {
	if resp == nil {
		return nil, &Error{Reason: "transport response missing"}
	}

	code, err := message.ParseResponseCode(resp.StatusCode)
	if err != nil {
		return nil, &Error{Reason: "unrecognized status code", StatusCode: resp.StatusCode}
	}

	if resp.Entity == nil {
		return nil, &Error{Reason: "transport response has no entity", StatusCode: resp.StatusCode}
	}

	ct := def
	if resp.Entity.ContentType != "" {
		if parsed, perr := message.ParseContentType(resp.Entity.ContentType); perr == nil {
			ct = parsed
		}
	}

	headers := make(message.Headers, 0, len(resp.Headers)+1)
	headers = append(headers, message.Header{Name: "Content-Type", Value: ct.String()})
	for _, h := range resp.Headers {
		if strings.EqualFold(h.Name, "Content-Type") {
			continue
		}
		headers = append(headers, message.Header{Name: h.Name, Value: h.Value})
	}

	return &message.Response{
		Code:    code,
		Headers: headers,
		Body:    message.RawBody(resp.Entity.Body),
	}, nil
}
