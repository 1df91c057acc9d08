// Package store defines the interface for task persistence operations.
// It abstracts the underlying storage mechanism from the HTTP layer so
// handlers can be exercised against any implementation, including test fakes.
package store
