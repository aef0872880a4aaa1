package sheets

import "context"

// Loader defines the interface for spreadsheet retrieval.
// This interface enables testability by allowing mock implementations.
type Loader interface {
	FetchSheet(ctx context.Context, sheetID, sheetName string) (*RawSheet, error)
}

// Ensure Client implements the interface
var _ Loader = (*Client)(nil)
