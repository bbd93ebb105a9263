package testkit

import "testing"

var seam = func(s string) string { return s }

func TestAssertions(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustNotPanic(t, func() {})
	MustContain(t, "« bonjour »", "bonjour")
	MustEqualText(t, "nbsp", "a b", "a b")
}

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seam, func(string) string { return "fake" })
		if got := seam("x"); got != "fake" {
			t.Fatalf("swap not applied, got %q", got)
		}
	})
	if got := seam("x"); got != "x" {
		t.Fatalf("swap not restored, got %q", got)
	}
}
