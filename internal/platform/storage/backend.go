package storage

import (
	"os"
	"path/filepath"
	"sync"
)

// Backend abstracts where collection files live so tests can swap the disk
// for memory. Load reports whether the collection exists at all.
type Backend interface {
	Load(name string) (data []byte, exists bool, err error)
	Store(name string, data []byte) error
}

// DiskBackend keeps one <name>.json file per collection under a data
// directory. Writes overwrite the whole file in place and are not atomic;
// concurrent writers race and the last write wins.
type DiskBackend struct {
	dir string
}

func NewDiskBackend(dir string) (*DiskBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskBackend{dir: dir}, nil
}

func (b *DiskBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *DiskBackend) Load(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (b *DiskBackend) Store(name string, data []byte) error {
	return os.WriteFile(b.path(name), data, 0o644)
}

// MemoryBackend is the in-memory substitute used by tests and dry runs. The
// mutex only protects the Go map itself; read-modify-write cycles above it
// still race exactly like they do on disk.
type MemoryBackend struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{files: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(name string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.files[name]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (b *MemoryBackend) Store(name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[name] = append([]byte(nil), data...)
	return nil
}
