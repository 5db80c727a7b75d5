package datastructure

import "container/heap"

type priorityQueueNode[T any] struct {
	rank  float64
	seq   uint64
	index int
	item  T
}

// priorityQueue is a min-heap on rank. Equal ranks pop in insertion order.
type priorityQueue[T any] []*priorityQueueNode[T]

func (pq priorityQueue[T]) Len() int {
	return len(pq)
}

func (pq priorityQueue[T]) Less(i, j int) bool {
	if pq[i].rank == pq[j].rank {
		return pq[i].seq < pq[j].seq
	}
	return pq[i].rank < pq[j].rank
}

func (pq priorityQueue[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue[T]) Push(x interface{}) {
	n := len(*pq)
	no := x.(*priorityQueueNode[T])
	no.index = n
	*pq = append(*pq, no)
}

func (pq *priorityQueue[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	no := old[n-1]
	old[n-1] = nil
	no.index = -1
	*pq = old[0 : n-1]
	return no
}

// MinPriorityQueue is the frontier of cost-ordered searches.
type MinPriorityQueue[T any] struct {
	pq  priorityQueue[T]
	seq uint64
}

func NewMinPriorityQueue[T any]() *MinPriorityQueue[T] {
	return &MinPriorityQueue[T]{pq: priorityQueue[T]{}}
}

func (q *MinPriorityQueue[T]) Push(item T, rank float64) {
	heap.Push(&q.pq, &priorityQueueNode[T]{rank: rank, seq: q.seq, item: item})
	q.seq++
}

// Pop removes the item with the lowest rank. It panics on an empty queue.
func (q *MinPriorityQueue[T]) Pop() (T, float64) {
	no := heap.Pop(&q.pq).(*priorityQueueNode[T])
	return no.item, no.rank
}

func (q *MinPriorityQueue[T]) Len() int {
	return q.pq.Len()
}
