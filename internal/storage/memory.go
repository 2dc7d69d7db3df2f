package storage

import "sync"

// MemoryBackend: Bellek içi backend. Testler ve geçici kullanım için.
type MemoryBackend struct {
	mu    sync.Mutex
	blobs [][]byte
}

func NewMemory() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) ReadAll() ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]byte, len(m.blobs))
	for i, b := range m.blobs {
		cp := make([]byte, len(b))
		copy(cp, b)
		out[i] = cp
	}
	return out, nil
}

func (m *MemoryBackend) WriteAll(blobs [][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([][]byte, len(blobs))
	for i, b := range blobs {
		c := make([]byte, len(b))
		copy(c, b)
		cp[i] = c
	}
	m.blobs = cp
	return nil
}
