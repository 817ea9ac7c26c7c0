package pool

import "github.com/fliklylike-cyber/Media-Grab/internal/model"

// Resettable is a constraint for types that can be wiped before reuse.
type Resettable interface {
	Reset()
}

// Pool recycles objects of type T over a bounded buffer of idle items,
// allocating fresh ones through its factory on a miss. It is used to reuse
// request decode targets on the hot handler path.
type Pool[T Resettable] struct {
	idle    chan T
	newItem func() T
}

// New creates a Pool parking at most capacity idle objects and calling
// newItem when none is available.
func New[T Resettable](capacity int, newItem func() T) *Pool[T] {
	return &Pool[T]{
		idle:    make(chan T, capacity),
		newItem: newItem,
	}
}

// NewSubmissionPool builds the pool the grab handler decodes request bodies
// into. The capacity covers a burst of concurrent decodes; anything beyond it
// simply allocates.
func NewSubmissionPool() *Pool[*model.Submission] {
	return New(64, func() *model.Submission {
		return &model.Submission{}
	})
}

// Get returns an idle object, falling back to the factory when none is
// parked. The result is always usable, never nil.
func (p *Pool[T]) Get() T {
	select {
	case item := <-p.idle:
		return item
	default:
		return p.newItem()
	}
}

// Put wipes the object and parks it for reuse. When the buffer is full the
// object is left for the garbage collector to reclaim.
func (p *Pool[T]) Put(item T) {
	item.Reset()

	select {
	case p.idle <- item:
	default:
	}
}
