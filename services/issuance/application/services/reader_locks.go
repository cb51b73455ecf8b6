package services

import "sync"

// readerLocks serializes the limit-check-then-insert window of the issuance
// workflow per reader. The persistence layer serializes individual statements
// but not the read-count/insert pair, so without this lock two concurrent
// Issue calls for the same reader could both pass the limit check.
//
// Entries are reference-counted and removed when the last holder unlocks, so
// the map does not grow with the total reader population.
type readerLocks struct {
	mu    sync.Mutex
	locks map[int64]*readerLock
}

type readerLock struct {
	mu   sync.Mutex
	refs int
}

func newReaderLocks() *readerLocks {
	return &readerLocks{locks: make(map[int64]*readerLock)}
}

// Lock acquires the lock for readerID and returns the matching unlock func.
func (l *readerLocks) Lock(readerID int64) (unlock func()) {
	l.mu.Lock()
	entry, ok := l.locks[readerID]
	if !ok {
		entry = &readerLock{}
		l.locks[readerID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, readerID)
		}
		l.mu.Unlock()
	}
}
