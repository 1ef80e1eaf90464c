package qsim

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// LogEntry is one message queued for asynchronous display.
type LogEntry struct {
	Message   string
	CreatedAt time.Time
}

/*
LogQueue decouples a presentation shell from the simulation path: a
bounded queue with a single consumer goroutine. Push never blocks the
producer; when the queue is full the entry is dropped and counted, which
is acceptable because log delivery is a display concern with no bearing
on simulation correctness.
*/
type LogQueue struct {
	entries chan LogEntry
	dropped atomic.Int64
	wg      sync.WaitGroup
	once    sync.Once
}

// NewLogQueue starts the consumer goroutine. Every queued entry is
// handed to consume in arrival order until Close is called.
func NewLogQueue(size int, consume func(LogEntry)) *LogQueue {
	if size <= 0 {
		size = 64
	}

	q := &LogQueue{entries: make(chan LogEntry, size)}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for entry := range q.entries {
			consume(entry)
		}
	}()

	return q
}

// Push formats and enqueues a message without ever blocking the caller.
func (q *LogQueue) Push(format string, args ...any) {
	entry := LogEntry{
		Message:   fmt.Sprintf(format, args...),
		CreatedAt: time.Now(),
	}

	select {
	case q.entries <- entry:
	default:
		q.dropped.Add(1)
	}
}

// Dropped returns how many entries were discarded on a full queue.
func (q *LogQueue) Dropped() int64 {
	return q.dropped.Load()
}

// Close drains the queue and stops the consumer. Pushing after Close is
// a caller bug, as with any closed channel.
func (q *LogQueue) Close() {
	q.once.Do(func() {
		close(q.entries)
	})
	q.wg.Wait()
}
