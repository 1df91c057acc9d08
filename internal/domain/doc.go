// Package domain contains the core business entities and validation rules
// of the task list service. It has no knowledge of storage or transport and
// can be used by any layer that needs to reason about tasks.
package domain
