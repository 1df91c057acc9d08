// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between HTTP clients and
// the task store, translating JSON payloads into store operations and store
// outcomes back into status codes.
package api
