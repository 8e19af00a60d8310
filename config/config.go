// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config loads the settings of an autowire container from YAML,
// dotenv files and the environment.
//
// Configuration only tunes the container. Wiring itself is never read from
// configuration.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Names of the event loggers a Config may ask for.
const (
	LoggerNop     = "nop"
	LoggerConsole = "console"
	LoggerZap     = "zap"
)

// Config holds the settings of a container.
type Config struct {
	// MaxDepth bounds how many constructors deep a construction may go. Zero
	// means no limit.
	MaxDepth int `yaml:"max_depth"`

	// Logger names the event logger: nop, console or zap.
	Logger string `yaml:"logger"`

	// Development switches the zap logger to a human-readable encoding at
	// debug level.
	Development bool `yaml:"development"`
}

// Default returns the settings of a container built without configuration.
func Default() Config {
	return Config{Logger: LoggerNop}
}

// Validate reports every problem with c.
func (c Config) Validate() error {
	var errs error
	if c.MaxDepth < 0 {
		errs = multierr.Append(errs, errors.Errorf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	switch c.Logger {
	case LoggerNop, LoggerConsole, LoggerZap:
	default:
		errs = multierr.Append(errs, errors.Errorf("unknown logger %q", c.Logger))
	}
	return errs
}

func (c Config) String() string {
	return fmt.Sprintf("{max_depth: %d, logger: %s, development: %t}", c.MaxDepth, c.Logger, c.Development)
}
