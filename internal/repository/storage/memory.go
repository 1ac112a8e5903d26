package storage

import "sync"

// MemoryStorage is a process-local key/value store. All state lives and dies
// with the process; the scoreboard is not meant to survive a restart.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string][]byte),
	}
}

func (that *MemoryStorage) Set(key string, value []byte) {
	that.mu.Lock()
	defer that.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	that.items[key] = copied
}

func (that *MemoryStorage) Get(key string) ([]byte, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.items[key]
	if !ok {
		return nil, false
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true
}

func (that *MemoryStorage) Delete(key string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.items, key)
}

func (that *MemoryStorage) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.items = make(map[string][]byte)
	return nil
}
