package in

import "context"

// Usecase is the inbound surface of the export module.
type Usecase interface {
	// ExportAll renders every stored record as one pretty-printed JSON
	// document with an export timestamp.
	ExportAll(ctx context.Context) (string, error)
	// ClearAll removes every record the app owns. Unrelated keys in the
	// same store are untouched.
	ClearAll(ctx context.Context) error
}
