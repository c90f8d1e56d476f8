package search

import (
	"container/heap"
)

// Frontier is the container of generated but not yet expanded items.
// Stack and Queue ignore the priority argument.
type Frontier[T any] interface {
	Push(item T, priority float64)
	Pop() (T, bool)
	Len() int
	IsEmpty() bool
}

// Stack is a LIFO frontier.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds item on top; priority is ignored.
func (s *Stack[T]) Push(item T, _ float64) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release reference
	s.items = s.items[:n-1]

	return item, true
}

// Len returns the number of queued items.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Queue is a FIFO frontier backed by a slice with a moving head.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item at the tail; priority is ignored.
func (q *Queue[T]) Push(item T, _ float64) {
	q.items = append(q.items, item)
}

// Pop removes and returns the oldest item.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// compact once the consumed prefix dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }

// PriorityQueue is a min-priority frontier with decrease-key support.
//
// Items with equal priority pop in insertion order. Identity for Update is
// the key returned by the function given to NewPriorityQueue; for search
// nodes this is the node's state.
type PriorityQueue[T any, K comparable] struct {
	heap  entryHeap[T]
	key   func(T) K
	index map[K]*pqEntry[T] // key → best queued entry for that key
	seq   uint64
}

// NewPriorityQueue returns an empty PriorityQueue identifying items by key.
func NewPriorityQueue[T any, K comparable](key func(T) K) *PriorityQueue[T, K] {
	return &PriorityQueue[T, K]{
		key:   key,
		index: make(map[K]*pqEntry[T]),
	}
}

// Push inserts item with priority without checking for duplicates.
func (pq *PriorityQueue[T, K]) Push(item T, priority float64) {
	e := &pqEntry[T]{item: item, priority: priority, seq: pq.seq}
	pq.seq++
	heap.Push(&pq.heap, e)

	k := pq.key(item)
	if cur, ok := pq.index[k]; !ok || priority < cur.priority {
		pq.index[k] = e
	}
}

// Update inserts item if its key is not queued. If the key is queued with
// a greater priority, the queued entry takes item and priority, keeps its
// place in insertion order, and the heap is fixed. Otherwise Update does
// nothing. It reports whether the queue changed.
func (pq *PriorityQueue[T, K]) Update(item T, priority float64) bool {
	e, ok := pq.index[pq.key(item)]
	if !ok {
		pq.Push(item, priority)
		return true
	}
	if e.priority <= priority {
		return false
	}
	e.item = item
	e.priority = priority
	heap.Fix(&pq.heap, e.index)

	return true
}

// Pop removes and returns the item with the lowest priority.
func (pq *PriorityQueue[T, K]) Pop() (T, bool) {
	if pq.heap.Len() == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&pq.heap).(*pqEntry[T])
	k := pq.key(e.item)
	if pq.index[k] == e {
		delete(pq.index, k)
	}

	return e.item, true
}

// Len returns the number of queued entries, duplicates included.
func (pq *PriorityQueue[T, K]) Len() int { return pq.heap.Len() }

// IsEmpty reports whether no entries are queued.
func (pq *PriorityQueue[T, K]) IsEmpty() bool { return pq.heap.Len() == 0 }

// pqEntry is one heap slot; index is maintained by entryHeap.Swap.
type pqEntry[T any] struct {
	item     T
	priority float64
	seq      uint64
	index    int
}

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap[T any] []*pqEntry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[T]) Push(x any) {
	e := x.(*pqEntry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}
