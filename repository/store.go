package repository

// Store is the key-value persistence collaborator. The debt collection
// round-trips as a single encoded blob under one key; the redirect
// resolver and settings each use their own keys.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Remove(key string) error
}
