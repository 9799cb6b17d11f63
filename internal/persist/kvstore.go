package persist

// Storage keys used by the persistence bridge.
const (
	StateKey   = "appState"
	HistoryKey = "searchHistory"
)

// KVStore is durable local key-value storage for serialized state blobs.
type KVStore interface {
	// Load returns the blob stored under key, or models.ErrStateNotFound.
	Load(key string) ([]byte, error)

	// Save overwrites the blob stored under key.
	Save(key string, data []byte) error

	// Delete removes the blob stored under key. Deleting an absent key
	// is not an error.
	Delete(key string) error

	// Close releases resources.
	Close() error
}
