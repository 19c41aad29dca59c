// SPDX-License-Identifier: MPL-2.0

package puzzle

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrUnknownPuzzle is returned when a lookup key matches no solver.
	ErrUnknownPuzzle = errors.New("unknown puzzle")
	// ErrDuplicatePuzzle is returned when two solvers share a day or name.
	ErrDuplicatePuzzle = errors.New("duplicate puzzle")
)

// Registry indexes solvers by day number and name.
type Registry struct {
	byDay  map[int]Solver
	byName map[string]Solver
}

// NewRegistry registers solvers, rejecting duplicate days and names.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{
		byDay:  make(map[int]Solver, len(solvers)),
		byName: make(map[string]Solver, len(solvers)),
	}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s to the registry.
func (r *Registry) Register(s Solver) error {
	if existing, ok := r.byDay[s.Day()]; ok {
		return fmt.Errorf("%w: day %d is registered by %q and %q", ErrDuplicatePuzzle, s.Day(), existing.Name(), s.Name())
	}
	name := strings.ToLower(s.Name())
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: name %q is registered twice", ErrDuplicatePuzzle, s.Name())
	}
	r.byDay[s.Day()] = s
	r.byName[name] = s
	return nil
}

// Lookup resolves key, which may be a day number ("4"), a day alias ("day4")
// or a solver name ("wordsearch").
func (r *Registry) Lookup(key string) (Solver, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if s, ok := r.byName[k]; ok {
		return s, nil
	}
	if day, err := strconv.Atoi(strings.TrimPrefix(k, "day")); err == nil {
		if s, ok := r.byDay[day]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPuzzle, key)
}

// Solvers returns all registered solvers ordered by day.
func (r *Registry) Solvers() []Solver {
	return slices.SortedFunc(maps.Values(r.byDay), func(a, b Solver) int {
		return cmp.Compare(a.Day(), b.Day())
	})
}
