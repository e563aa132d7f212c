// Package memoize provides a single-shot lazily-computed value, used by the
// to-pattern evaluator so a source's content digest or timestamp is read
// from disk at most once per resolution even if referenced multiple times.
package memoize

// Memoized wraps a thunk that computes O, caching its first result (or
// error) and returning it on every subsequent call.
type Memoized[O any] struct {
	f      func() (O, error)
	output *O
	err    error
	done   bool
}

// From wraps f in a Memoized that has not yet been evaluated.
func From[O any](f func() (O, error)) *Memoized[O] {
	return &Memoized[O]{f: f}
}

// Get returns the cached value, computing it on the first call.
func (m *Memoized[O]) Get() (O, error) {
	if !m.done {
		output, err := m.f()
		m.output = &output
		m.err = err
		m.done = true
	}
	return *m.output, m.err
}

// Peek returns the cached value without computing it, reporting false if
// nothing has been computed yet.
func (m *Memoized[O]) Peek() (O, bool) {
	if !m.done {
		var zero O
		return zero, false
	}
	return *m.output, true
}

// Take returns the cached value if present, otherwise computes it without
// caching.
func (m *Memoized[O]) Take() (O, error) {
	if m.done {
		return *m.output, m.err
	}
	return m.f()
}

// Drain clears the cache and returns whatever was cached, if anything.
func (m *Memoized[O]) Drain() (O, bool) {
	if !m.done {
		var zero O
		return zero, false
	}
	output := *m.output
	m.output = nil
	m.err = nil
	m.done = false
	return output, true
}
