package schema

import (
	"context"
	"slices"
	"sync"
)

// MemoryProvider serves column lists registered in memory.
type MemoryProvider struct {
	mu     sync.RWMutex
	tables map[string][]Column
}

// NewMemoryProvider returns a provider seeded with tables.
func NewMemoryProvider(tables map[string][]Column) *MemoryProvider {
	p := &MemoryProvider{tables: make(map[string][]Column, len(tables))}
	for name, cols := range tables {
		p.tables[name] = slices.Clone(cols)
	}
	return p
}

// Set replaces the columns of a table.
func (p *MemoryProvider) Set(table string, cols ...Column) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tables[table] = slices.Clone(cols)
}

func (p *MemoryProvider) Columns(_ context.Context, table string) ([]Column, error) {
	if table == "" {
		return nil, ErrEmptyTable
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.tables[table]), nil
}
