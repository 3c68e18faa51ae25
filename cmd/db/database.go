package db

import (
	"errors"
	"sort"
	"sync"
)

var ErrWrongType = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")

// Database holds named logs. The logs themselves are not safe for
// concurrent use, so every access goes through the database mutex.
type Database struct {
	mu     sync.Mutex
	stores map[string]*Entry
}

func NewDatabase() *Database {
	return &Database{stores: make(map[string]*Entry)}
}

func (d *Database) FlushAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stores = make(map[string]*Entry)
}

func (d *Database) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.stores)
}

// Keys returns the stored keys in lexical order.
func (d *Database) Keys() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	keys := make([]string, 0, len(d.stores))
	for k := range d.stores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Del removes the given keys and reports how many existed.
func (d *Database) Del(keys ...string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	deleted := 0
	for _, k := range keys {
		if _, found := d.stores[k]; found {
			delete(d.stores, k)
			deleted++
		}
	}

	return deleted
}

// Append adds values to the log stored at key, creating it when missing, and
// returns the new length.
func (d *Database) Append(kind EntryType, key string, values ...string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, found := d.stores[key]
	if !found {
		entry = newEntry(kind)
	}

	if entry.Kind != kind {
		return 0, ErrWrongType
	}

	for _, v := range values {
		entry.append(v)
	}
	if !found {
		d.stores[key] = entry
	}

	return entry.length(), nil
}

// Pop removes the oldest value of the log at key. Popping the last value
// removes the key.
func (d *Database) Pop(kind EntryType, key string) (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, found := d.stores[key]
	if !found {
		return "", false, nil
	}

	if entry.Kind != kind {
		return "", false, ErrWrongType
	}

	value, ok := entry.pop()
	if entry.length() == 0 {
		delete(d.stores, key)
	}

	return value, ok, nil
}

func (d *Database) Len(kind EntryType, key string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, found := d.stores[key]
	if !found {
		return 0, nil
	}

	if entry.Kind != kind {
		return 0, ErrWrongType
	}

	return entry.length(), nil
}

// Range returns the values of the log at key from oldest to newest.
func (d *Database) Range(kind EntryType, key string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, found := d.stores[key]
	if !found {
		return []string{}, nil
	}

	if entry.Kind != kind {
		return nil, ErrWrongType
	}

	if kind == ObjLog {
		return entry.Log.Values(), nil
	}

	return entry.BiLog.Values(), nil
}

// RevRange returns the values of the doubly linked log at key from newest
// to oldest.
func (d *Database) RevRange(key string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, found := d.stores[key]
	if !found {
		return []string{}, nil
	}

	if entry.Kind != ObjBiLog {
		return nil, ErrWrongType
	}

	return entry.BiLog.Reversed(), nil
}
