// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package lint

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Runner validates a batch of catalog files. Files are independent, so the
// runner may check them concurrently; results always come back in input
// order and each result is self-contained.
type Runner struct {
	// Jobs is the number of files validated concurrently.
	// Values below 2 validate serially.
	Jobs int

	// Logger receives per-file debug diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Run validates every input and returns one result per input, in input
// order. Problems with individual files are reported inside their
// FileResult; the returned error only covers runner setup.
func (r Runner) Run(inputs []Input) ([]FileResult, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]FileResult, len(inputs))

	if r.Jobs < 2 || len(inputs) < 2 {
		for i, in := range inputs {
			logger.Debug("validating file", zap.String("path", in.Path))
			results[i] = ValidateFile(in)
		}
		return results, nil
	}

	pool, err := ants.NewPool(r.Jobs, ants.WithPanicHandler(func(p any) {
		logger.Error("validation worker panic",
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, in := range inputs {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			logger.Debug("validating file", zap.String("path", in.Path))
			results[i] = ValidateFile(in)
		}
		if err := pool.Submit(task); err != nil {
			// pool rejected the task; validate inline so the batch
			// still yields one result per input
			task()
		}
	}
	wg.Wait()

	return results, nil
}

// Failed reports whether any result in the batch failed validation.
func Failed(results []FileResult) bool {
	for _, res := range results {
		if !res.OK {
			return true
		}
	}
	return false
}
