// Package storage provides the namespaced key-value gateway the list store
// persists through.
package storage

// Keys the list store writes under the gateway namespace. These are a stable
// contract: a new build must keep reading data written by an old one.
const (
	KeyItems  = "items"
	KeyNextID = "nextId"
)

// Gateway is a namespaced key-value store for JSON-serializable values.
// Implementations never surface failures to callers: saves that cannot
// complete are logged and dropped, and loads that cannot complete leave the
// destination untouched and return false so the caller falls back to its
// default.
type Gateway interface {
	Save(key string, value any)
	Load(key string, into any) bool
	Remove(key string)
	Clear()
}
