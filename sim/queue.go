// Implements the WaitQueue, which holds all jobs waiting for the workstation.
// Jobs are enqueued on arrival and dequeued strictly in arrival order.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is a FIFO queue of jobs that have arrived but not yet entered
// service. Arrival order is never reordered: the head of the queue is always
// the next job to occupy the workstation.
type WaitQueue struct {
	queue []*Job
}

// Enqueue adds a job to the back of the wait queue.
func (wq *WaitQueue) Enqueue(j *Job) {
	wq.queue = append(wq.queue, j)
}

// Dequeue removes and returns the job at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Job {
	if len(wq.queue) == 0 {
		return nil
	}
	head := wq.queue[0]
	wq.queue = wq.queue[1:]
	return head
}

// Peek returns the job at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Job {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of jobs in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range wq.queue {
		sb.WriteString(fmt.Sprint(j))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
