package cart

import "sync"

// MemoryPersister keeps the state in process. Used in tests and when Redis is
// not configured.
type MemoryPersister struct {
	mu    sync.Mutex
	state State
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load() (State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, nil
}

func (p *MemoryPersister) Save(s State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
	return nil
}
