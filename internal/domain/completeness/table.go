package completeness

import (
	"fmt"

	"talent-match/internal/domain/level"
)

// Rule awards Weight points when Satisfied reports true for a snapshot.
type Rule[T any] struct {
	Field     string
	Weight    int
	Satisfied func(T) bool
}

// Table is an ordered, immutable list of rules for one entity kind.
type Table[T any] struct {
	kind  string
	rules []Rule[T]
}

func NewTable[T any](kind string, rules ...Rule[T]) (Table[T], error) {
	total := 0
	for _, r := range rules {
		if r.Satisfied == nil {
			return Table[T]{}, fmt.Errorf("%w: %s rule %q has no predicate", level.ErrInvalidRange, kind, r.Field)
		}
		if r.Weight < 0 {
			return Table[T]{}, fmt.Errorf("%w: %s rule %q weight %d", level.ErrInvalidRange, kind, r.Field, r.Weight)
		}
		total += r.Weight
	}
	if total > 100 {
		return Table[T]{}, fmt.Errorf("%w: %s weights sum to %d", level.ErrInvalidRange, kind, total)
	}
	cp := make([]Rule[T], len(rules))
	copy(cp, rules)
	return Table[T]{kind: kind, rules: cp}, nil
}

func MustTable[T any](kind string, rules ...Rule[T]) Table[T] {
	t, err := NewTable(kind, rules...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Table[T]) Kind() string { return t.kind }

func (t Table[T]) Rules() []Rule[T] {
	out := make([]Rule[T], len(t.rules))
	copy(out, t.rules)
	return out
}

// Compute sums the weights of satisfied rules, clamped to [0,100].
func (t Table[T]) Compute(v T) int {
	score := 0
	for _, r := range t.rules {
		if r.Satisfied(v) {
			score += r.Weight
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Missing lists the fields whose rules are not satisfied, in table order.
func (t Table[T]) Missing(v T) []string {
	out := make([]string, 0)
	for _, r := range t.rules {
		if !r.Satisfied(v) {
			out = append(out, r.Field)
		}
	}
	return out
}
