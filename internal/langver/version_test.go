package langver

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for s, want := range byName {
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %v, want %v", s, got, want)
		}
		if got.String() != s {
			t.Fatalf("%v.String() = %q, want %q", got, got.String(), s)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("1800-1364"); err == nil {
		t.Fatalf("expected an error for an unrecognized edition")
	}
}

func TestAtLeast(t *testing.T) {
	if V1800_2009.AtLeast(V1800_2012) {
		t.Fatalf("2009 should not be at least 2012")
	}
	if !V1800_2017.AtLeast(V1800_2012) {
		t.Fatalf("2017 should be at least 2012")
	}
	if !V1800_2012.AtLeast(V1800_2012) {
		t.Fatalf("a version should be at least itself")
	}
}
