package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapTieBreak(t *testing.T) {
	ranks := []float64{3, 1, 2, 1, 3, 0, 1}
	want := []int{5, 1, 3, 6, 2, 0, 4}

	testCases := []struct {
		name string
		heap *MinHeap[int]
	}{
		{"binary", NewBinaryHeap[int]()},
		{"four-ary", NewFourAryHeap[int]()},
		{"d below two", NewdAryHeap[int](1)},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			for i, r := range ranks {
				tt.heap.Insert(NewPriorityQueueNode(r, i))
			}
			require.Equal(t, len(ranks), tt.heap.Size())

			top, err := tt.heap.GetMin()
			require.NoError(t, err)
			assert.Equal(t, 5, top.GetItem())

			got := make([]int, 0, len(ranks))
			for !tt.heap.IsEmpty() {
				node, err := tt.heap.ExtractMin()
				require.NoError(t, err)
				assert.Equal(t, -1, node.GetPos())
				got = append(got, node.GetItem())
			}
			assert.Equal(t, want, got)

			_, err = tt.heap.ExtractMin()
			assert.ErrorIs(t, err, ErrHeapEmpty)
		})
	}
}
