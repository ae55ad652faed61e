package failure_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"corhoh/internal/failure"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := failure.Wrap(failure.ErrIO, "corpus", "write", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"corpus", "write", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := failure.Wrap(nil, " ", "", "", nil)
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "corpus failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestIsInputProblem(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"configuration", failure.Wrap(failure.ErrConfiguration, "metadata", "load", "missing column", nil), true},
		{"not found", failure.Wrap(failure.ErrNotFound, "corpus", "texts", "", fs.ErrNotExist), true},
		{"io", failure.Wrap(failure.ErrIO, "corpus", "write", "", errors.New("disk full")), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if got := failure.IsInputProblem(tc.err); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}
