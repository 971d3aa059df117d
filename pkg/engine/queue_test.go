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

package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netrec/pkg/logger"
)

func TestQueuePreservesOrder(t *testing.T) {
	queue := NewQueue(16, logger.NewTestLogger())
	queue.Start()

	defer queue.Stop()

	var (
		mu  sync.Mutex
		got []int
	)

	done := make(chan struct{})

	for i := 0; i < 10; i++ {
		i := i

		queue.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()

			if i == 9 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("queue did not drain")
	}

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestQueueAfterFires(t *testing.T) {
	queue := NewQueue(16, logger.NewTestLogger())
	queue.Start()

	defer queue.Stop()

	fired := make(chan struct{})

	queue.After(10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestQueueAfterCancel(t *testing.T) {
	queue := NewQueue(16, logger.NewTestLogger())
	queue.Start()

	defer queue.Stop()

	var fired sync.Once

	firedCh := make(chan struct{})

	cancel := queue.After(20*time.Millisecond, func() {
		fired.Do(func() { close(firedCh) })
	})
	cancel()

	// Give the timer a chance to misfire, then confirm it did not.
	settled := make(chan struct{})

	queue.After(100*time.Millisecond, func() { close(settled) })

	select {
	case <-settled:
	case <-time.After(5 * time.Second):
		t.Fatal("sentinel timer never fired")
	}

	select {
	case <-firedCh:
		t.Fatal("cancelled timer fired")
	default:
	}
}

func TestQueueStartStopIdempotent(t *testing.T) {
	queue := NewQueue(4, logger.NewTestLogger())

	queue.Start()
	queue.Start()

	ran := make(chan struct{})

	queue.Post(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("task never ran")
	}

	queue.Stop()
	queue.Stop()
}

func TestQueuePostAfterStopDropped(t *testing.T) {
	queue := NewQueue(4, logger.NewTestLogger())
	queue.Start()
	queue.Stop()

	require.NotPanics(t, func() {
		queue.Post(func() { t.Error("task ran after stop") })
	})
}
