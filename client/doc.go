// Package client exposes the uniform HTTP client facade backed by a
// pluggable transport engine.
//
// Each verb operation constructs a pending request and immediately
// starts its asynchronous dispatch; the returned handle pairs the
// request description with a single-resolution future for the canonical
// response. Failures surface through the future as typed errors, never
// synchronously from the verbs.
//
//	engine := nethttp.New()
//	c, err := client.New(engine, client.Config{
//	    Timeout:            5 * time.Second,
//	    DefaultContentType: "application/json",
//	})
//
//	req := c.Get(ctx, "https://api.example.com/users/123", nil)
//	resp, err := req.Response.Result(ctx)
//
// Callers branch on the failure kind to decide retryability:
//
//	switch {
//	case client.IsTimeout(err):
//	case client.IsTransport(err):
//	case client.IsInvalidResponse(err):
//	case client.IsInternal(err):
//	}
package client
