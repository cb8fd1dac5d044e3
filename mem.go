package envconf

import (
	"context"
	"sync"
)

// Mem is an in memory Reader.  It stands in for the process environment in tests or when an
// application wants to hand extractors an explicit mapping.
type Mem struct {
	vals map[string][]byte
	mu   sync.RWMutex
}

var _ Reader = &Mem{}

// MemFrom returns a Mem holding a copy of vals
func MemFrom(vals map[string]string) *Mem {
	m := &Mem{
		vals: make(map[string][]byte, len(vals)),
	}
	for k, v := range vals {
		m.vals[k] = append([]byte{}, v...)
	}
	return m
}

func (m *Mem) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, exists := m.vals[key]
	if !exists {
		return nil, nil
	}
	return append([]byte{}, b...), nil
}

// Write sets key to value.  A nil value removes the key; an empty non-nil value sets it to
// the empty string.
func (m *Mem) Write(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vals == nil {
		m.vals = make(map[string][]byte)
	}
	if value == nil {
		delete(m.vals, key)
	} else {
		m.vals[key] = append([]byte{}, value...)
	}
	return nil
}
