package analytics

// groups is a keyed accumulator map that remembers first-encounter order,
// so iteration over finished groups is deterministic for a given scan.
// It is the one group-by shape every aggregation in this package shares:
// fold each record into its key's accumulator, then finalize per group.
type groups[K comparable, A any] struct {
	byKey map[K]A
	order []K
}

func newGroups[K comparable, A any]() *groups[K, A] {
	return &groups[K, A]{byKey: make(map[K]A)}
}

// fold applies fn to the accumulator for key, creating a zero accumulator
// on first encounter.
func (g *groups[K, A]) fold(key K, fn func(acc A) A) {
	acc, ok := g.byKey[key]
	if !ok {
		g.order = append(g.order, key)
	}
	g.byKey[key] = fn(acc)
}

// finalize projects every group through fn in first-encounter order.
func (g *groups[K, A]) finalize(fn func(key K, acc A)) {
	for _, key := range g.order {
		fn(key, g.byKey[key])
	}
}

func (g *groups[K, A]) len() int {
	return len(g.byKey)
}
