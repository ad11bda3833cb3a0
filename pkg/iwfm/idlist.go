package iwfm

// idList caches an id array together with its reverse lookup table, so
// id-to-position translation is a map hit instead of a per-call scan.
// Both are immutable for the lifetime of one open engine handle.
type idList struct {
	ids   []int
	index map[int]int // id -> zero-based position
}

func newIDList(ids []int) *idList {
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	return &idList{ids: ids, index: index}
}

// indexOf returns the zero-based position of id.
func (l *idList) indexOf(id int) (int, bool) {
	i, ok := l.index[id]
	return i, ok
}

// at resolves a one-based engine index back to the user-facing id.
func (l *idList) at(nativeIndex int) (int, bool) {
	if nativeIndex < 1 || nativeIndex > len(l.ids) {
		return 0, false
	}
	return l.ids[nativeIndex-1], true
}

// list returns a copy of the id array.
func (l *idList) list() []int {
	out := make([]int, len(l.ids))
	copy(out, l.ids)
	return out
}
