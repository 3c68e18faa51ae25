package txlog

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewLog(t *testing.T) {
	log := NewLog()
	if log.Length != 0 {
		t.Error("Expected Length to be 0")
	}
	if log.head != nil || log.tail != nil {
		t.Error("Expected head and tail to be nil")
	}
}

func TestLogAppend(t *testing.T) {
	log := NewLog()
	log.Append("Transaction 1")

	if log.Length != 1 {
		t.Error("Expected Length to be 1")
	}
	if log.head == nil || log.head != log.tail {
		t.Error("Expected head and tail to be the same node")
	}

	log.Append("Transaction 2")
	log.Append("Transaction 3")
	if log.Length != 3 {
		t.Error("Expected Length to be 3")
	}
	if log.head.value != "Transaction 1" || log.tail.value != "Transaction 3" {
		t.Error("Expected head to be 'Transaction 1' and tail 'Transaction 3'")
	}
	if !reflect.DeepEqual(log.Values(), []string{"Transaction 1", "Transaction 2", "Transaction 3"}) {
		t.Error("Expected Values() to return entries in append order, got", log.Values())
	}
}

func TestLogPopEmpty(t *testing.T) {
	log := NewLog()
	if v, ok := log.Pop(); ok || v != "" {
		t.Error("Expected Pop() on an empty log to return no value")
	}
	if log.Length != 0 {
		t.Error("Expected Length to stay 0")
	}
}

func TestLogPopEmptyString(t *testing.T) {
	log := NewLog()
	log.Append("")

	v, ok := log.Pop()
	if !ok || v != "" {
		t.Error("Expected Pop() to return the empty entry")
	}
	if _, ok := log.Pop(); ok {
		t.Error("Expected second Pop() to return no value")
	}
}

func TestLogPopSingle(t *testing.T) {
	log := NewLog()
	log.Append("Transaction 1")

	if v, ok := log.Pop(); !ok || v != "Transaction 1" {
		t.Error("Expected Pop() to return 'Transaction 1'")
	}
	if log.Length != 0 {
		t.Error("Expected Length to be 0")
	}
	if log.head != nil || log.tail != nil {
		t.Error("Expected head and tail to be nil")
	}
}

func TestLogPopMultiple(t *testing.T) {
	log := NewLog()
	log.Append("Transaction 1")
	log.Append("Transaction 2")
	log.Append("Transaction 3")

	for i, expected := range []string{"Transaction 1", "Transaction 2", "Transaction 3"} {
		v, ok := log.Pop()
		if !ok || v != expected {
			t.Errorf("Expected Pop() to return '%s', got '%s'", expected, v)
		}
		if log.Length != 2-i {
			t.Errorf("Expected Length to be %d, got %d", 2-i, log.Length)
		}
	}

	if _, ok := log.Pop(); ok {
		t.Error("Expected Pop() to return no value")
	}
}

func TestLogPopThenAppend(t *testing.T) {
	log := NewLog()
	log.Append("A")
	log.Append("B")
	log.Append("C")
	log.Pop()

	if !reflect.DeepEqual(log.Values(), []string{"B", "C"}) {
		t.Error("Expected [B C], got", log.Values())
	}

	log.Append("D")
	if !reflect.DeepEqual(log.Values(), []string{"B", "C", "D"}) {
		t.Error("Expected [B C D], got", log.Values())
	}
	if v, _ := log.Peek(); v != "B" {
		t.Error("Expected Peek() to return B")
	}
}

func TestLogMixedOperations(t *testing.T) {
	log := NewLog()
	log.Append("T1")
	log.Append("T2")

	if v, ok := log.Pop(); !ok || v != "T1" {
		t.Error("Expected Pop() to return T1")
	}
	if log.Length != 1 {
		t.Error("Expected Length to be 1")
	}

	log.Append("T3")
	if log.Length != 2 {
		t.Error("Expected Length to be 2")
	}

	if v, _ := log.Pop(); v != "T2" {
		t.Error("Expected Pop() to return T2")
	}
	if v, _ := log.Pop(); v != "T3" {
		t.Error("Expected Pop() to return T3")
	}
	if _, ok := log.Pop(); ok {
		t.Error("Expected Pop() to return no value")
	}
}

func TestLogLengthAccounting(t *testing.T) {
	log := NewLog()
	appends, pops := 0, 0
	for i := 0; i < 50; i++ {
		if i%3 == 2 {
			if _, ok := log.Pop(); ok {
				pops++
			}
			continue
		}
		log.Append("entry")
		appends++
	}

	if log.Length != appends-pops {
		t.Errorf("Expected Length to be %d, got %d", appends-pops, log.Length)
	}
	if len(log.Values()) != log.Length {
		t.Error("Expected chain size to match Length")
	}
}

func TestLogPopCorrupted(t *testing.T) {
	log := NewLog()
	log.Append("A")
	log.Append("B")
	log.tail = log.head

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrCorrupted) {
			t.Error("Expected Pop() to panic with ErrCorrupted")
		}
	}()

	log.Pop()
	t.Error("Expected Pop() to panic")
}
