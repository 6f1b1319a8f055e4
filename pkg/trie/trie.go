// Package trie implements a prefix tree keyed by sequences of comparable
// values, used to resolve key sequences into bindings.
package trie

// Trie maps sequences of K to values of V. The zero value is an empty trie
// ready to use.
//
// A sequence that is a strict prefix of another bound sequence can be bound,
// but is never reported as Matched: a node with children always reports
// Incomplete, even when it carries a value.
type Trie[K comparable, V any] struct {
	root node[K, V]
}

type node[K comparable, V any] struct {
	value    V
	hasValue bool
	children map[K]*node[K, V]
}

// Verdict is the outcome of a lookup.
type Verdict int

// Possible values for Verdict.
const (
	// No bound sequence starts with the looked-up sequence.
	NoMatch Verdict = iota
	// The looked-up sequence is a prefix of at least one bound sequence, or
	// is bound but also a prefix of a longer one.
	Incomplete
	// The looked-up sequence is bound and is not a prefix of any other bound
	// sequence.
	Matched
)

var verdictNames = [...]string{"NoMatch", "Incomplete", "Matched"}

func (v Verdict) String() string {
	if 0 <= v && int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return "Verdict(?)"
}

// Result is the result of a lookup. Value is only meaningful when Verdict is
// Matched. Discarded is the number of leading elements that were ignored to
// obtain the match, and is always 0 unless Verdict is Matched.
type Result[V any] struct {
	Verdict   Verdict
	Discarded int
	Value     V
}

// Insert binds seq to v. If seq is already bound, the existing binding is kept
// and v is ignored.
func (t *Trie[K, V]) Insert(seq []K, v V) {
	n := &t.root
	for _, k := range seq {
		child, ok := n.children[k]
		if !ok {
			if n.children == nil {
				n.children = make(map[K]*node[K, V])
			}
			child = &node[K, V]{}
			n.children[k] = child
		}
		n = child
	}
	if !n.hasValue {
		n.value, n.hasValue = v, true
	}
}

// Fetch looks up seq.
func (t *Trie[K, V]) Fetch(seq []K) Result[V] {
	n := &t.root
	for _, k := range seq {
		child, ok := n.children[k]
		if !ok {
			return Result[V]{Verdict: NoMatch}
		}
		n = child
	}
	if n.hasValue && len(n.children) == 0 {
		return Result[V]{Verdict: Matched, Value: n.value}
	}
	return Result[V]{Verdict: Incomplete}
}

// FetchWithLeadingDiscard looks up seq[i:] for i from 0 to len(seq), and
// returns the first Matched result with Discarded set to i. If no suffix is
// matched, it returns the result of looking up the whole seq.
//
// This allows a binding to fire even when unrelated elements precede it.
func (t *Trie[K, V]) FetchWithLeadingDiscard(seq []K) Result[V] {
	for i := 0; i <= len(seq); i++ {
		r := t.Fetch(seq[i:])
		if r.Verdict == Matched {
			r.Discarded = i
			return r
		}
	}
	return t.Fetch(seq)
}
