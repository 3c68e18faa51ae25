package txlog

import (
	"errors"
	"fmt"
)

// ErrCorrupted is raised (as a panic) when the node links of a log no longer
// agree with its head, tail and Length.
var ErrCorrupted = errors.New("txlog: corrupted node links")

func corrupted(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrCorrupted, fmt.Sprintf(format, args...)))
}

type sNode struct {
	value string
	next  *sNode
}

// Log is a singly linked transaction log: entries are appended at the tail
// and popped from the head.
type Log struct {
	Length int
	head   *sNode
	tail   *sNode
}

func NewLog() *Log {
	return &Log{Length: 0, head: nil, tail: nil}
}

func (l *Log) Append(value string) {
	node := &sNode{value: value}
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}

	l.tail = node
	l.Length++
}

// Pop removes the oldest entry. The boolean is false when the log is empty.
func (l *Log) Pop() (string, bool) {
	if l.head == nil {
		return "", false
	}

	head := l.head
	if head.next != nil {
		if head == l.tail {
			corrupted("head has a successor but is also the tail")
		}
		l.head = head.next
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

func (l *Log) Peek() (string, bool) {
	if l.head == nil {
		return "", false
	}

	return l.head.value, true
}

// Values returns the entries from oldest to newest.
func (l *Log) Values() []string {
	out := make([]string, 0, l.Length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
