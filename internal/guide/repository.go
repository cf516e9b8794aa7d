package guide

import "sync"

// Entry is a guidance note added at runtime.
type Entry struct {
	Keyword string `json:"keyword"`
	Tag     Tag    `json:"tag"`
	Note    string `json:"note,omitempty"`
}

// Repository holds guidance entries added while the process runs. Entries
// are NOT persisted: the repository starts empty and its contents are lost
// when the process exits.
type Repository struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewRepository returns an empty in-process repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Add appends an entry, categorizing the keyword if no tag was set.
func (r *Repository) Add(e Entry) Entry {
	if e.Tag == "" {
		e.Tag = Categorize(e.Keyword)
	}
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	return e
}

// List returns a snapshot of all entries in insertion order.
func (r *Repository) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
