/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package engine runs the single-consumer event worker that feeds the
// wakeup and notification state machines.
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/carverauto/netrec/pkg/logger"
)

const defaultQueueSize = 256

// Queue executes posted functions one at a time in arrival order. Timer
// callbacks are delivered through the same worker, so cancelling a timer
// and scheduling its successor is atomic with respect to queued work.
type Queue struct {
	tasks   chan func()
	done    chan struct{}
	started atomic.Bool
	stopped atomic.Bool
	wg      sync.WaitGroup
	logger  logger.Logger
}

// NewQueue creates a queue with the given buffer size (0 uses the
// default).
func NewQueue(size int, log logger.Logger) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}

	return &Queue{
		tasks:  make(chan func(), size),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Start launches the worker. Repeated calls are no-ops.
func (q *Queue) Start() {
	if !q.started.CompareAndSwap(false, true) {
		return
	}

	q.wg.Add(1)

	go q.run()
}

// Stop shuts the worker down after it finishes the task in hand.
// Repeated calls are no-ops.
func (q *Queue) Stop() {
	if !q.started.Load() || !q.stopped.CompareAndSwap(false, true) {
		return
	}

	close(q.done)
	q.wg.Wait()
}

func (q *Queue) run() {
	defer q.wg.Done()

	for {
		select {
		case <-q.done:
			return
		case task := <-q.tasks:
			task()
		}
	}
}

// Post enqueues a task for the worker. Posting after Stop drops the task.
func (q *Queue) Post(task func()) {
	select {
	case q.tasks <- task:
	case <-q.done:
		q.logger.Debug().Msg("Dropping task posted after queue stop")
	}
}

// After schedules fn to run on the worker after d. The returned cancel is
// race-free when called from worker context: a cancelled timer's callback
// is discarded even if the underlying timer already fired.
func (q *Queue) After(d time.Duration, fn func()) (cancel func()) {
	var cancelled atomic.Bool

	timer := time.AfterFunc(d, func() {
		q.Post(func() {
			if cancelled.Load() {
				return
			}

			fn()
		})
	})

	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}
