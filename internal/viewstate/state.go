// Package viewstate holds resolver and repository output in observable
// containers for a presentation layer to render.
package viewstate

import "sync"

// Status is the phase of a State.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot. Only the constructors below build one, so
// a loading state never carries data and a ready state never carries an
// error. A failed state may carry the last ready data as Stale.
type State[T any] struct {
	status   Status
	data     T
	err      string
	hasStale bool
}

// Idle is the state before the first load.
func Idle[T any]() State[T] {
	return State[T]{status: StatusIdle}
}

// Loading is the state while a load is in flight.
func Loading[T any]() State[T] {
	return State[T]{status: StatusLoading}
}

// Ready holds the result of a successful load.
func Ready[T any](data T) State[T] {
	return State[T]{status: StatusReady, data: data}
}

// Failed holds a user-facing error message.
func Failed[T any](msg string) State[T] {
	return State[T]{status: StatusFailed, err: msg}
}

// FailedWithStale is Failed that still exposes the previous ready data.
func FailedWithStale[T any](msg string, stale T) State[T] {
	return State[T]{status: StatusFailed, err: msg, data: stale, hasStale: true}
}

func (s State[T]) Status() Status { return s.status }

func (s State[T]) IsLoading() bool { return s.status == StatusLoading }

// Data returns the ready data.
func (s State[T]) Data() (T, bool) {
	if s.status != StatusReady {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Err returns the error message of a failed state.
func (s State[T]) Err() (string, bool) {
	return s.err, s.status == StatusFailed
}

// Stale returns the data of the last ready state, if a failed state kept it.
func (s State[T]) Stale() (T, bool) {
	if s.status != StatusFailed || !s.hasStale {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Store is an observable container for one State. It has a single writer
// (the owning controller) and any number of readers.
type Store[T any] struct {
	mu     sync.RWMutex
	state  State[T]
	subs   map[int]chan State[T]
	nextID int
}

// NewStore creates a store in the idle state.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		state: Idle[T](),
		subs:  make(map[int]chan State[T]),
	}
}

// Snapshot returns the current state.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe returns a channel that receives the current state immediately
// and every later one. A slow reader skips intermediate states but always
// sees the newest. Call cancel to stop and close the channel.
func (s *Store[T]) Subscribe() (<-chan State[T], func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan State[T], 1)
	ch <- s.state
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// set replaces the state and notifies subscribers.
func (s *Store[T]) set(st State[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = st
	for _, ch := range s.subs {
		// Replace an unread value so the newest state is never dropped.
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}
