package client

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"

	"github.com/bobpace/newman/future"
	"github.com/bobpace/newman/message"
	"github.com/bobpace/newman/translate"
	"github.com/bobpace/newman/transport"
)

// dispatch constructs the pending request and immediately starts its
// asynchronous run. Every failure kind resolves the future; nothing is
// raised synchronously.
func (c *Client) dispatch(ctx context.Context, method message.Method, url string, headers message.Headers, body message.RawBody) *PendingRequest {
	p := &PendingRequest{
		ID:       uuid.New(),
		Method:   method,
		URL:      url,
		Headers:  headers,
		Body:     body,
		Response: future.New[*message.Response](),
	}

	c.log.Debug("dispatching request", map[string]any{
		"id":     p.ID.String(),
		"method": method.String(),
		"url":    url,
	})

	go c.run(ctx, p)
	return p
}

// run performs one full request lifecycle: translate out, submit,
// await the reply bounded by the configured timeout, translate back.
// The transport request and response never outlive this call.
func (c *Client) run(ctx context.Context, p *PendingRequest) {
	req, err := translate.BuildRequest(p.Method, p.URL, p.Headers, p.Body, c.defaultCT)
	if err != nil {
		c.fail(p, NewTransportError(err))
		return
	}

	replies := c.engine.Submit(ctx, req, c.config.Timeout)
	timer := c.clock.Timer(c.config.Timeout)
	defer timer.Stop()

	select {
	case reply, ok := <-replies:
		if !ok {
			c.fail(p, NewInternalError("transport reply channel closed without a reply"))
			return
		}
		c.resolve(p, reply)
	case <-timer.C:
		c.fail(p, NewTimeoutError(nil))
	}
}

// resolve classifies a transport reply and settles the future.
func (c *Client) resolve(p *PendingRequest, reply any) {
	switch v := reply.(type) {
	case *transport.Response:
		resp, err := translate.ToCanonical(v, c.defaultCT)
		if err != nil {
			var terr *translate.Error
			if errors.As(err, &terr) {
				c.fail(p, NewInvalidResponseError(terr.StatusCode, terr.Reason))
				return
			}
			c.fail(p, NewInvalidResponseError(0, err.Error()))
			return
		}
		p.Response.Complete(resp)
		c.log.Debug("request resolved", map[string]any{
			"id":     p.ID.String(),
			"status": resp.Code.Int(),
		})
	case error:
		if isTimeout(v) {
			c.fail(p, NewTimeoutError(v))
			return
		}
		c.fail(p, NewTransportError(v))
	default:
		c.fail(p, NewInternalError(fmt.Sprintf("unexpected transport reply of type %T", reply)))
	}
}

func (c *Client) fail(p *PendingRequest, err *Error) {
	p.Response.Fail(err)
	c.log.Debug("request failed", map[string]any{
		"id":   p.ID.String(),
		"code": err.Code.String(),
		"err":  err.Message,
	})
}

// isTimeout reports whether a transport fault is a timeout in disguise,
// either a deadline expiry or a net.Error that reports one.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
