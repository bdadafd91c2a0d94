package util

import "testing"

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint("John Doe\nSoftware Engineer")
	b := Fingerprint("John Doe\nSoftware Engineer")
	if a != b {
		t.Fatalf("expected identical fingerprints, got %s and %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestFingerprintDistinguishesText(t *testing.T) {
	if Fingerprint("resume one") == Fingerprint("resume two") {
		t.Fatal("different texts produced identical fingerprints")
	}
}
