// Package client provides a typed HTTP client for the task list API.
// It is used by the taskctl command and by tests that exercise the server
// over a real network connection.
package client
