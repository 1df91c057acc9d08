// Package memory provides the in-process implementation of the storage
// interfaces defined in the internal/store package. State lives only as long
// as the store value that owns it and is lost when the process exits.
package memory
