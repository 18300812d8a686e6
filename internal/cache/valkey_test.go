package cache

import (
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestConnectValkey(t *testing.T) {
	mr := miniredis.RunT(t)

	host, port, ok := strings.Cut(mr.Addr(), ":")
	if !ok {
		t.Fatalf("unexpected addr %q", mr.Addr())
	}

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Fatalf("ConnectValkey: %v", err)
	}
	defer client.Close()
}

func TestConnectValkeyUnreachable(t *testing.T) {
	// Port 1 is essentially never listening.
	if _, err := ConnectValkey("127.0.0.1", "1", ""); err == nil {
		t.Error("expected connection error")
	}
}
