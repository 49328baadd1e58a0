package parsel

// memoKey identifies one match attempt: which element, at which byte
// offset.
type memoKey struct {
	id     int
	offset int
}

// memoTable is the packrat cache.  It is scoped to a single parse run
// over a single input buffer and discarded with it.  A nil value
// records a failure; failures are as cacheable as successes.
//
// Fatal outcomes (configuration or callback errors) are never stored:
// memoizing them as failures would corrupt the cache for a misleading
// reason.
type memoTable map[memoKey]*Match

func (t memoTable) get(id, offset int) (*Match, bool) {
	m, ok := t[memoKey{id: id, offset: offset}]
	return m, ok
}

func (t memoTable) put(id, offset int, m *Match) {
	t[memoKey{id: id, offset: offset}] = m
}
