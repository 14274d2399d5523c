package catalog

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dimension/expr"
)

// Visitation states of the depth-first ordering.
const (
	white = iota // not yet visited
	gray         // on the current path
	black        // emitted
)

// item is a definition together with the catalog it came from.
type item struct {
	def     Definition
	catalog string
}

// depGraph links each definition to the definitions its expression refers
// to. Only symbols defined in the same batch are edges; symbols already in
// the registry resolve at registration time.
type depGraph struct {
	items []item
	deps  [][]int
}

func newDepGraph(items []item) (*depGraph, error) {
	// first occurrence wins; later duplicates fail at registration
	index := make(map[string]int, len(items))
	for i, it := range items {
		if _, dup := index[it.def.Symbol]; !dup {
			index[it.def.Symbol] = i
		}
	}

	g := &depGraph{items: items, deps: make([][]int, len(items))}
	for i, it := range items {
		if it.def.IsBase() {
			continue
		}
		syms, err := expr.Symbols(it.def.Expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %w", ErrDefinition, it.catalog, it.def.Symbol, err)
		}
		for _, s := range syms {
			if j, ok := index[s]; ok {
				g.deps[i] = append(g.deps[i], j)
			}
		}
	}
	return g, nil
}

// sorter holds the state of one depth-first ordering pass.
type sorter struct {
	g     *depGraph
	state []int
	path  []int
	order []item
}

// sorted returns the items so that every definition follows the ones it
// refers to. Input that is already in that order is returned unchanged.
func (g *depGraph) sorted() ([]item, error) {
	s := &sorter{
		g:     g,
		state: make([]int, len(g.items)),
		order: make([]item, 0, len(g.items)),
	}
	for i := range g.items {
		if s.state[i] == white {
			if err := s.visit(i); err != nil {
				return nil, err
			}
		}
	}
	return s.order, nil
}

// visit emits i after everything it depends on.
func (s *sorter) visit(i int) error {
	// 1. Gray means i is on the current path: a back edge closes a cycle
	// 2. Black items are already emitted
	switch s.state[i] {
	case gray:
		return s.cycle(i)
	case black:
		return nil
	}
	// 3. Enter i
	s.state[i] = gray
	s.path = append(s.path, i)

	// 4. Dependencies first
	for _, j := range s.g.deps[i] {
		if err := s.visit(j); err != nil {
			return err
		}
	}

	// 5. Leave i and emit it (post-order is already dependency order)
	s.path = s.path[:len(s.path)-1]
	s.state[i] = black
	s.order = append(s.order, s.g.items[i])
	return nil
}

// cycle reports the loop closing at i: "a -> b -> a".
func (s *sorter) cycle(i int) error {
	start := 0
	for k, j := range s.path {
		if j == i {
			start = k
			break
		}
	}
	names := make([]string, 0, len(s.path)-start+1)
	for _, j := range s.path[start:] {
		names = append(names, s.g.items[j].def.Symbol)
	}
	names = append(names, s.g.items[i].def.Symbol)
	return fmt.Errorf("%w: %s", ErrCycle, strings.Join(names, " -> "))
}
