// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"sync"
)

// Runner executes one installation job at a time on a background
// goroutine. The submitting side receives one-way progress messages
// while the job runs and a single completion callback when it ends.
// Submitting while a job is running fails with ErrBusy.
type Runner struct {
	mu   sync.Mutex
	busy bool
}

// Busy reports whether a job is currently running.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Start runs job on a background goroutine. progress is handed to the
// job for one-way messages, done is invoked with the job result after
// the job finished and the runner became idle again.
func (r *Runner) Start(job func(ProgressFunc) Result, progress ProgressFunc, done func(Result)) error {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return ErrBusy
	}
	r.busy = true
	r.mu.Unlock()

	go func() {
		res := job(progress)

		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()

		if done != nil {
			done(res)
		}
	}()

	return nil
}
