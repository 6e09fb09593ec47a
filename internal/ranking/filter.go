package ranking

// Filter is one pipeline stage deciding whether a candidate survives.
// Stages are run in the order given, cheapest first.
type Filter[T any] interface {
	Name() string
	Keep(c T) bool
}

type funcFilter[T any] struct {
	name string
	keep func(T) bool
}

func (f funcFilter[T]) Name() string { return f.name }

func (f funcFilter[T]) Keep(c T) bool { return f.keep(c) }

func NewFilter[T any](name string, keep func(T) bool) Filter[T] {
	return funcFilter[T]{name: name, keep: keep}
}

// Step describes the result of one filter stage.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

func applyFilters[T any](pool []T, filters []Filter[T]) ([]T, []Step) {
	steps := make([]Step, 0, len(filters))
	cur := pool
	for _, f := range filters {
		if f == nil {
			continue
		}
		next := make([]T, 0, len(cur))
		for _, c := range cur {
			if f.Keep(c) {
				next = append(next, c)
			}
		}
		steps = append(steps, Step{Name: f.Name(), Initial: len(cur), Dropped: len(cur) - len(next), Left: len(next)})
		cur = next
	}
	return cur, steps
}
