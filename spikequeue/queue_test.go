package spikequeue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timestamps(q *Queue) []float32 {
	var out []float32
	for !q.Empty() {
		out = append(out, q.Front().Timestamp)
		q.Pop()
	}
	return out
}

func TestQueue_BackAppendFastPath(t *testing.T) {
	var q Queue
	q.Add(1, 0)
	q.Add(2, 1)
	q.Add(3, 2)

	assert.Equal(t, []float32{1, 2, 3}, timestamps(&q))
}

func TestQueue_FrontPrependFastPath(t *testing.T) {
	var q Queue
	q.Add(3, 0)
	q.Add(2, 1)
	q.Add(1, 2)

	assert.Equal(t, []float32{1, 2, 3}, timestamps(&q))
}

func TestQueue_OutOfOrderInsertScansAndInserts(t *testing.T) {
	var q Queue
	q.Add(1, 0)
	q.Add(5, 1)
	q.Add(10, 2)
	q.Add(7, 3) // belongs between 5 and 10

	got := timestamps(&q)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
	assert.Equal(t, []float32{1, 5, 7, 10}, got)
}
