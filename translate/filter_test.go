package translate

import (
	"testing"

	"github.com/bobpace/newman/message"
)

func TestFilterHeaders_DropsProtectedNamesAnyCase(t *testing.T) {
	variants := []string{
		"Connection", "CONNECTION", "connection",
		"Content-Length", "content-length", "CoNtEnT-LeNgTh",
		"Content-Type", "CONTENT-TYPE",
		"Date", "Server", "Transfer-Encoding", "User-Agent", "user-agent",
	}

	for _, name := range variants {
		h := message.NewHeaders(name, "anything")
		out := FilterHeaders(h)
		if len(out) != 0 {
			t.Errorf("FilterHeaders should drop %q, got %v", name, out)
		}
	}
}

func TestFilterHeaders_ForwardsOthersVerbatim(t *testing.T) {
	h := message.NewHeaders(
		"Accept", "application/json",
		"Content-Length", "0",
		"X-Correlation-Id", "abc-123",
		"authorization", "Bearer tok",
	)

	out := FilterHeaders(h)
	if len(out) != 3 {
		t.Fatalf("expected 3 forwarded headers, got %d: %v", len(out), out)
	}
	if out[0].Name != "Accept" || out[0].Value != "application/json" {
		t.Errorf("first forwarded header = %+v", out[0])
	}
	if out[1].Name != "X-Correlation-Id" {
		t.Errorf("order not preserved: %+v", out)
	}
	if out[2].Name != "authorization" {
		t.Errorf("casing should be preserved, got %q", out[2].Name)
	}
}

func TestFilterHeaders_NilYieldsEmpty(t *testing.T) {
	out := FilterHeaders(nil)
	if out == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(out) != 0 {
		t.Errorf("expected empty slice, got %v", out)
	}
}

func TestProtected(t *testing.T) {
	if !Protected("CONTENT-TYPE") {
		t.Error("content-type should be protected in any case")
	}
	if Protected("Accept") {
		t.Error("accept should not be protected")
	}
}
