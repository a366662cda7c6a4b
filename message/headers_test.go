package message

import "testing"

func TestHeadersGet_CaseInsensitive(t *testing.T) {
	h := NewHeaders("X-Request-Id", "abc", "Content-Type", "text/html")

	tests := []struct {
		name  string
		want  string
		found bool
	}{
		{"X-Request-Id", "abc", true},
		{"x-request-id", "abc", true},
		{"CONTENT-TYPE", "text/html", true},
		{"Accept", "", false},
	}

	for _, tt := range tests {
		got, ok := h.Get(tt.name)
		if ok != tt.found {
			t.Errorf("Get(%q) found = %v, want %v", tt.name, ok, tt.found)
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHeadersGet_FirstMatchWins(t *testing.T) {
	h := NewHeaders("Accept", "text/html", "accept", "application/json")

	got, ok := h.Get("Accept")
	if !ok || got != "text/html" {
		t.Errorf("Get(Accept) = %q, %v; want text/html, true", got, ok)
	}

	values := h.Values("ACCEPT")
	if len(values) != 2 {
		t.Fatalf("Values(ACCEPT) returned %d values, want 2", len(values))
	}
	if values[0] != "text/html" || values[1] != "application/json" {
		t.Errorf("Values(ACCEPT) = %v, order not preserved", values)
	}
}

func TestHeadersNilVsEmpty(t *testing.T) {
	var absent Headers
	if absent != nil {
		t.Error("zero value should be nil (no headers supplied)")
	}

	empty := NewHeaders()
	if empty == nil {
		t.Error("NewHeaders() should return a non-nil empty collection")
	}
	if len(empty) != 0 {
		t.Errorf("NewHeaders() has %d entries, want 0", len(empty))
	}
}

func TestHeadersPrepend(t *testing.T) {
	h := NewHeaders("X-A", "1", "X-B", "2")
	out := h.Prepend("Content-Type", "application/json")

	if len(out) != 3 {
		t.Fatalf("expected 3 headers, got %d", len(out))
	}
	if out[0].Name != "Content-Type" {
		t.Errorf("prepended header should be first, got %q", out[0].Name)
	}
	if out[1].Name != "X-A" || out[2].Name != "X-B" {
		t.Error("original order should be preserved after the prepended entry")
	}
	if len(h) != 2 {
		t.Error("Prepend should not modify the receiver")
	}
}

func TestHeadersContains(t *testing.T) {
	h := NewHeaders("Content-Length", "0")
	if !h.Contains("content-length") {
		t.Error("Contains should match case-insensitively")
	}
	if h.Contains("Content-Type") {
		t.Error("Contains should not report absent headers")
	}
}

func TestNewHeadersOddPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for odd argument count")
		}
	}()
	NewHeaders("only-a-name")
}
