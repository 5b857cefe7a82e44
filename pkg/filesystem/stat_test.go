package filesystem

import (
	"context"
	"errors"
	"testing"
)

func TestQueryMetadataContext(t *testing.T) {
	// Query metadata for the current directory with a background context.
	metadata, err := QueryMetadataContext(context.Background(), ".")
	if err != nil {
		t.Fatal("unable to query metadata:", err)
	} else if metadata == nil {
		t.Fatal("metadata query returned nil result")
	}
}

func TestQueryMetadataContextPreCancelled(t *testing.T) {
	// Create a pre-cancelled context.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Ensure that the query aborts with the context's error.
	if _, err := QueryMetadataContext(ctx, "."); err == nil {
		t.Fatal("metadata query succeeded with cancelled context")
	} else if !errors.Is(err, context.Canceled) {
		t.Error("metadata query error does not match context error:", err)
	}
}
