package pipeline

import (
	"sync"

	"github.com/verdante/import-service/internal/types"
)

// Board holds the last result of each entity kind until the next run replaces it
type Board struct {
	mu      sync.RWMutex
	results map[types.EntityKind]types.ImportResult
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{results: make(map[types.EntityKind]types.ImportResult)}
}

// Put replaces the result for its entity kind
func (b *Board) Put(result types.ImportResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results[result.Entity] = result
}

// Get returns a copy of the last result for kind
func (b *Board) Get(kind types.EntityKind) (types.ImportResult, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result, ok := b.results[kind]
	if ok {
		result.Errors = append(make([]string, 0, len(result.Errors)), result.Errors...)
	}
	return result, ok
}
