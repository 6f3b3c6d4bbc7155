package idxtable

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

type Table[T1 any] interface {
	Get(id int64) (T1, error)
	Claim(id int64, d T1) error

	Iterate() *Iterator[T1]

	Count() int
}

type ValidationFn func(id int64) error

// NewTable returns a table holding ids 0 to s-1. The init entries are
// claimed without running the validation func; every entry that cannot
// be added is reported in the joined error.
func NewTable[T1 any](s int64, initEntries map[int64]T1, v ValidationFn) (Table[T1], error) {
	r := &table[T1]{
		m:          new(sync.RWMutex),
		table:      map[int64]T1{},
		size:       s,
		validateFn: v,
	}

	var errm error
	for id, d := range initEntries {
		if err := r.add(id, d, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table[T1 any] struct {
	m          *sync.RWMutex
	table      map[int64]T1
	size       int64
	validateFn ValidationFn
}

func (r *table[T1]) validate(id int64, init bool) error {
	if id < 0 {
		return fmt.Errorf("id %d cannot be negative", id)
	}
	if id > r.size-1 {
		return fmt.Errorf("id %d is bigger then max allowed entries: %d", id, r.size-1)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) Get(id int64) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T1

	if err := r.validate(id, false); err != nil {
		return d, err
	}

	d, ok := r.table[id]
	if !ok {
		return d, fmt.Errorf("no match found for: %v", id)
	}
	return d, nil
}

func (r *table[T1]) Claim(id int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, d, false)
}

// Iterate returns an iterator over a snapshot of the claimed entries in
// ascending id order.
func (r *table[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table[T1]) iterate() *Iterator[T1] {
	keys := make([]int64, 0, len(r.table))
	values := make(map[int64]T1, len(r.table))
	for key, d := range r.table {
		keys = append(keys, key)
		values[key] = d
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})

	return &Iterator[T1]{current: -1, keys: keys, table: values}
}

func (r *table[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table[T1]) isFree(id int64) bool {
	_, ok := r.table[id]
	return !ok
}

func (r *table[T1]) add(id int64, d T1, init bool) error {
	if err := r.validate(id, init); err != nil {
		return err
	}
	if !r.isFree(id) {
		return fmt.Errorf("entry %d already exists", id)
	}
	r.table[id] = d
	return nil
}

