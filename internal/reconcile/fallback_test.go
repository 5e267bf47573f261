package reconcile

import (
	"strconv"
	"strings"
	"testing"
)

func TestFallbackID_Stable(t *testing.T) {
	a := FallbackID("Order Import")
	b := FallbackID("Order Import")
	if a != b {
		t.Fatalf("FallbackID not stable: %q vs %q", a, b)
	}
}

func TestFallbackID_Range(t *testing.T) {
	for _, name := range []string{"", "a", "Order Import", "日本語のプロセス", strings.Repeat("x", 4096)} {
		id := FallbackID(name)
		if !strings.HasPrefix(id, FallbackPrefix) {
			t.Fatalf("FallbackID(%q) = %q, missing prefix", name, id)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, FallbackPrefix))
		if err != nil {
			t.Fatalf("FallbackID(%q) = %q, suffix not numeric: %v", name, id, err)
		}
		if n < 0 || n >= FallbackBuckets {
			t.Errorf("FallbackID(%q) suffix %d outside [0,%d)", name, n, FallbackBuckets)
		}
	}
}
