package simple

import (
	"context"
	"strconv"
	"sync"
)

// Generator hands out "1", "2", ... in order.
type Generator struct {
	mu      sync.Mutex
	counter int
}

func New() *Generator {
	//nolint:exhaustruct
	return &Generator{}
}

func (g *Generator) GetID(_ context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++

	return strconv.Itoa(g.counter), nil
}
