package nethttp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bobpace/newman/transport"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	return u
}

func await(t *testing.T, ch <-chan any) any {
	t.Helper()
	select {
	case reply := <-ch:
		return reply
	case <-time.After(5 * time.Second):
		t.Fatal("no reply from engine")
		return nil
	}
}

func TestEngineSubmit_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("expected forwarded header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-Id", "abc")
		w.WriteHeader(200)
		io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	e := New()
	req := &transport.Request{
		Method:  "GET",
		URL:     mustURL(t, srv.URL+"/things"),
		Headers: []transport.Header{{Name: "X-Api-Key", Value: "secret"}},
	}

	reply := await(t, e.Submit(context.Background(), req, 5*time.Second))
	resp, ok := reply.(*transport.Response)
	if !ok {
		t.Fatalf("expected *transport.Response, got %T: %v", reply, reply)
	}

	if resp.StatusCode != 200 {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if resp.Entity == nil {
		t.Fatal("expected an entity")
	}
	if resp.Entity.ContentType != "application/json" {
		t.Errorf("entity content type = %q", resp.Entity.ContentType)
	}
	if string(resp.Entity.Body) != `{"ok":true}` {
		t.Errorf("entity body = %q", resp.Entity.Body)
	}
	for _, h := range resp.Headers {
		if strings.EqualFold(h.Name, "Content-Type") {
			t.Error("content-type must not appear as a discrete header")
		}
	}
	found := false
	for _, h := range resp.Headers {
		if h.Name == "X-Request-Id" && h.Value == "abc" {
			found = true
		}
	}
	if !found {
		t.Errorf("discrete headers should survive, got %v", resp.Headers)
	}
}

func TestEngineSubmit_POSTEntity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{}` {
			t.Errorf("body = %q", body)
		}
		w.WriteHeader(201)
	}))
	defer srv.Close()

	e := New()
	req := &transport.Request{
		Method: "POST",
		URL:    mustURL(t, srv.URL+"/users"),
		Entity: &transport.Entity{ContentType: "application/json", Body: []byte(`{}`)},
	}

	reply := await(t, e.Submit(context.Background(), req, 5*time.Second))
	resp, ok := reply.(*transport.Response)
	if !ok {
		t.Fatalf("expected *transport.Response, got %T", reply)
	}
	if resp.StatusCode != 201 {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestEngineSubmit_NoEntityMeansNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("expected empty request body, got %q", body)
		}
		if r.Header.Get("Content-Type") != "" {
			t.Errorf("no content-type should be sent without an entity")
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	e := New()
	req := &transport.Request{Method: "GET", URL: mustURL(t, srv.URL)}

	reply := await(t, e.Submit(context.Background(), req, 5*time.Second))
	if _, ok := reply.(*transport.Response); !ok {
		t.Fatalf("expected *transport.Response, got %T", reply)
	}
}

func TestEngineSubmit_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	e := New()
	req := &transport.Request{Method: "GET", URL: mustURL(t, srv.URL)}

	reply := await(t, e.Submit(context.Background(), req, time.Second))
	if _, ok := reply.(error); !ok {
		t.Fatalf("expected an error reply, got %T", reply)
	}
}

func TestEngineSubmit_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	e := New()
	req := &transport.Request{Method: "GET", URL: mustURL(t, srv.URL)}

	reply := await(t, e.Submit(context.Background(), req, 50*time.Millisecond))
	if _, ok := reply.(error); !ok {
		t.Fatalf("expected an error reply, got %T", reply)
	}
}

func TestEngineUnwrap(t *testing.T) {
	e := New()
	if e.Unwrap() == nil {
		t.Error("Unwrap should return the underlying round tripper")
	}
}
