package txlog

type dNode struct {
	value string
	next  *dNode
	prev  *dNode
}

// BiLog is a doubly linked transaction log. It has the same append/pop
// contract as Log and can additionally be walked from either end.
type BiLog struct {
	Length int
	head   *dNode
	tail   *dNode
}

func NewBiLog() *BiLog {
	return &BiLog{Length: 0, head: nil, tail: nil}
}

func (l *BiLog) Append(value string) {
	node := &dNode{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}

	l.tail = node
	l.Length++
}

// Pop removes the oldest entry. The boolean is false when the log is empty.
func (l *BiLog) Pop() (string, bool) {
	if l.head == nil {
		return "", false
	}

	head := l.head
	if head.prev != nil {
		corrupted("head has a predecessor")
	}

	if next := head.next; next != nil {
		if next.prev != head {
			corrupted("successor of head does not link back to it")
		}
		next.prev = nil
		l.head = next
	} else {
		if head != l.tail {
			corrupted("head has no successor but is not the tail")
		}
		l.head, l.tail = nil, nil
	}

	l.Length--
	if l.Length < 0 || (l.Length == 0) != (l.head == nil) {
		corrupted("length %d does not match the chain", l.Length)
	}

	head.next = nil
	return head.value, true
}

func (l *BiLog) Peek() (string, bool) {
	if l.head == nil {
		return "", false
	}

	return l.head.value, true
}

func (l *BiLog) PeekTail() (string, bool) {
	if l.tail == nil {
		return "", false
	}

	return l.tail.value, true
}

// Iter returns a cursor over the entries from oldest to newest. Each call
// returns an independent cursor and the log is left untouched.
func (l *BiLog) Iter() *Iterator {
	return &Iterator{cur: l.head}
}

// BackIter returns a cursor over the entries from newest to oldest.
func (l *BiLog) BackIter() *Iterator {
	return &Iterator{cur: l.tail, back: true}
}

// Drain detaches every entry from the log and returns a newest-to-oldest
// cursor over them. The log is empty afterwards.
func (l *BiLog) Drain() *Iterator {
	it := l.BackIter()
	l.head, l.tail, l.Length = nil, nil, 0
	return it
}

func (l *BiLog) Values() []string {
	return l.Iter().Collect()
}

func (l *BiLog) Reversed() []string {
	return l.BackIter().Collect()
}
