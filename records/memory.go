package records

import "sync"

// MemoryStore keeps records for the lifetime of the process
type MemoryStore struct {
	mu      sync.RWMutex
	best    float64
	hasBest bool
	results []Result
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) BestTime() (float64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.best, m.hasBest, nil
}

func (m *MemoryStore) SetBestTime(seconds float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = seconds
	m.hasBest = true
	return nil
}

func (m *MemoryStore) SaveResult(r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	if over := len(m.results) - maxStoredResults; over > 0 {
		m.results = append(m.results[:0], m.results[over:]...)
	}
	return nil
}

func (m *MemoryStore) Results(limit int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.results, limit), nil
}

func (m *MemoryStore) Close() error {
	return nil
}
