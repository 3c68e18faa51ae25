package db

import "skabillium/txlog/cmd/txlog"

type EntryType = byte

const (
	ObjLog EntryType = iota
	ObjBiLog
)

type Entry struct {
	Kind  EntryType
	Log   *txlog.Log
	BiLog *txlog.BiLog
}

func newEntry(kind EntryType) *Entry {
	if kind == ObjBiLog {
		return &Entry{Kind: ObjBiLog, BiLog: txlog.NewBiLog()}
	}

	return &Entry{Kind: ObjLog, Log: txlog.NewLog()}
}

func (e *Entry) append(value string) {
	if e.Kind == ObjBiLog {
		e.BiLog.Append(value)
		return
	}

	e.Log.Append(value)
}

func (e *Entry) pop() (string, bool) {
	if e.Kind == ObjBiLog {
		return e.BiLog.Pop()
	}

	return e.Log.Pop()
}

func (e *Entry) length() int {
	if e.Kind == ObjBiLog {
		return e.BiLog.Length
	}

	return e.Log.Length
}
