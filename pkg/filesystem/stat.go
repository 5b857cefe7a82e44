package filesystem

import (
	"context"
)

// metadataResult bundles the result of an asynchronous metadata query.
type metadataResult struct {
	// metadata is the query result, if successful.
	metadata *Metadata
	// err is the query error, if unsuccessful.
	err error
}

// QueryMetadataContext is a context-aware variant of QueryMetadata. The
// underlying stat operation can't be interrupted, but if the context is
// cancelled before the operation completes, then this function returns early
// with the context's error and the operation's eventual result is discarded.
func QueryMetadataContext(ctx context.Context, path string) (*Metadata, error) {
	// Check for early cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Perform the query in the background. The result channel is buffered so
	// that the query Goroutine can terminate even if the result is abandoned.
	results := make(chan metadataResult, 1)
	go func() {
		metadata, err := QueryMetadata(path)
		results <- metadataResult{metadata, err}
	}()

	// Wait for the query to complete or the context to be cancelled.
	select {
	case result := <-results:
		return result.metadata, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
