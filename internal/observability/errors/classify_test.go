package errors

import (
	goerrors "errors"
	"fmt"
	"net/url"
	"testing"
)

func TestClassifyNil(t *testing.T) {
	t.Parallel()

	if got := Classify(nil); got != "" {
		t.Fatalf("Classify(nil) = %q, want empty", got)
	}
}

func TestClassifyUnwrapsToInnermost(t *testing.T) {
	t.Parallel()

	inner := &url.Error{Op: "Post", URL: "http://x", Err: goerrors.New("boom")}
	wrapped := fmt.Errorf("call backend: %w", inner)

	// errors.New returns *errorString; unwrapping goes past url.Error.
	if got := Classify(wrapped); got != "errors_errorstring" {
		t.Fatalf("Classify = %q", got)
	}
}

func TestClassifyConcreteType(t *testing.T) {
	t.Parallel()

	err := &url.Error{Op: "Post", URL: "http://x", Err: nil}
	if got := Classify(err); got != "url_error" {
		t.Fatalf("Classify = %q", got)
	}
}
