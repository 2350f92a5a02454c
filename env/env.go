//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global configuration for the digest
// engines and tools.
package env

import (
	"crypto/rand"
	"io"
	"os"
)

// Config defines the global configuration for digest computation.
// Config must not be modified after being passed to any module. It is
// safe for concurrent use by multiple modules as they do not modify
// it.
type Config struct {
	// Workers specifies how many goroutines expand message schedules
	// ahead of the compression fold. Values below 2 select the
	// sequential reference path.
	Workers int

	// Rand is the entropy source for generated inputs.
	Rand io.Reader

	// Verbose enables trace output to Out.
	Verbose bool
	Out     io.Writer
}

// GetWorkers returns the number of schedule expansion workers.
func (config *Config) GetWorkers() int {
	if config == nil || config.Workers < 1 {
		return 1
	}
	return config.Workers
}

// GetRandom returns the source of entropy for generated inputs.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetOutput returns the writer for trace output.
func (config *Config) GetOutput() io.Writer {
	if config != nil && config.Out != nil {
		return config.Out
	}
	return os.Stdout
}
