package routing

import (
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// stackFrontier is LIFO: the last added node is removed first.
type stackFrontier struct {
	items []int
}

func newStackFrontier() *stackFrontier {
	return &stackFrontier{items: make([]int, 0)}
}

func (f *stackFrontier) Add(node int, _ float64) {
	f.items = append(f.items, node)
}

func (f *stackFrontier) Remove() int {
	n := len(f.items) - 1
	node := f.items[n]
	f.items = f.items[:n]
	return node
}

func (f *stackFrontier) Empty() bool {
	return len(f.items) == 0
}

func (f *stackFrontier) Len() int {
	return len(f.items)
}

// queueFrontier is FIFO.
type queueFrontier struct {
	items []int
	head  int
}

func newQueueFrontier() *queueFrontier {
	return &queueFrontier{items: make([]int, 0)}
}

func (f *queueFrontier) Add(node int, _ float64) {
	f.items = append(f.items, node)
}

func (f *queueFrontier) Remove() int {
	node := f.items[f.head]
	f.head++
	if f.head == len(f.items) {
		f.items = f.items[:0]
		f.head = 0
	}
	return node
}

func (f *queueFrontier) Empty() bool {
	return f.head == len(f.items)
}

func (f *queueFrontier) Len() int {
	return len(f.items) - f.head
}

// priorityFrontier removes the node with the smallest priority. Equal priorities leave in
// insertion order.
type priorityFrontier struct {
	pq *da.MinHeap[int]
}

func newPriorityFrontier() *priorityFrontier {
	return &priorityFrontier{pq: da.NewFourAryHeap[int]()}
}

func (f *priorityFrontier) Add(node int, priority float64) {
	f.pq.Insert(da.NewPriorityQueueNode(priority, node))
}

func (f *priorityFrontier) Remove() int {
	top, _ := f.pq.ExtractMin()
	return top.GetItem()
}

func (f *priorityFrontier) Empty() bool {
	return f.pq.IsEmpty()
}

func (f *priorityFrontier) Len() int {
	return f.pq.Size()
}
