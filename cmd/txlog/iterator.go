package txlog

// Iterator walks the nodes of a BiLog in one direction. It holds the next
// node to visit and never modifies the links it follows.
type Iterator struct {
	cur  *dNode
	back bool
}

// Next returns the value under the cursor and advances it. After the last
// value every call returns false.
func (it *Iterator) Next() (string, bool) {
	if it.cur == nil {
		return "", false
	}

	value := it.cur.value
	if it.back {
		it.cur = it.cur.prev
	} else {
		it.cur = it.cur.next
	}

	return value, true
}

func (it *Iterator) Collect() []string {
	out := []string{}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}

	return out
}
