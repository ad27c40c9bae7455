package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: "tempdial.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}

	msg := err.Error()
	for _, want := range []string{"config.load", "invalid_config", "path=tempdial.yaml", "root"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "mocksource.fetch", Kind: KindSource, Err: ErrSource}

	if !IsKind(err, KindSource) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind not to match other kinds")
	}
	if IsKind(errors.New("plain"), KindSource) {
		t.Fatalf("expected IsKind=false for plain errors")
	}
}

func TestOpErrorNil(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("flaky"), true},
		{"source", &OpError{Op: "mocksource.fetch", Kind: KindSource, Err: ErrSource}, true},
		{"attempt timeout", &OpError{Op: "mocksource.fetch", Kind: KindExecution, Err: context.DeadlineExceeded}, true},
		{"canceled", &OpError{Op: "mocksource.fetch", Kind: KindExecution, Err: context.Canceled}, false},
		{"invalid config", &OpError{Op: "config.map", Kind: KindInvalidConfig, Err: ErrInvalidConfig}, false},
		{"not found", &OpError{Op: "configfinder.find", Kind: KindNotFound, Err: ErrNotFound}, false},
	}
	for _, c := range cases {
		if got := Retryable(c.err); got != c.want {
			t.Errorf("%s: Retryable = %v, want %v", c.name, got, c.want)
		}
	}
}
