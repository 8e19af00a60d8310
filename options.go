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

package autowire

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/autowire/autowireevent"
	"go.uber.org/autowire/config"
	"go.uber.org/autowire/internal/clock"
)

// Option configures a Container.
type Option interface {
	fmt.Stringer

	apply(*Container)
}

// WithLogger sends the container's events to l. Without it the container
// logs nothing.
func WithLogger(l autowireevent.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ l autowireevent.Logger }

func (o loggerOption) apply(c *Container) { c.log = o.l }

func (o loggerOption) String() string { return fmt.Sprintf("autowire.WithLogger(%v)", o.l) }

// WithCatalog makes the container construct types from cat instead of the
// default catalog.
func WithCatalog(cat *Catalog) Option {
	return catalogOption{cat}
}

type catalogOption struct{ cat *Catalog }

func (o catalogOption) apply(c *Container) { c.catalog = o.cat }

func (o catalogOption) String() string {
	return fmt.Sprintf("autowire.WithCatalog(%d types)", len(o.cat.Names()))
}

// WithMaxDepth fails construction of any type more than n constructors deep.
// Zero means no limit; circular dependencies are detected either way.
func WithMaxDepth(n int) Option {
	return maxDepthOption(n)
}

type maxDepthOption int

func (o maxDepthOption) apply(c *Container) { c.maxDepth = int(o) }

func (o maxDepthOption) String() string { return fmt.Sprintf("autowire.WithMaxDepth(%d)", int(o)) }

type clockOption struct{ clock clock.Clock }

func withClock(clk clock.Clock) Option { return clockOption{clk} }

func (o clockOption) apply(c *Container) { c.clock = o.clock }

func (clockOption) String() string { return "autowire.withClock()" }

// NewFromConfig returns a container set up as cfg describes. Console and zap
// output goes to w. Further options are applied after the configured ones.
func NewFromConfig(cfg config.Config, w io.Writer, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	l, err := cfg.EventLogger(w)
	if err != nil {
		return nil, errors.Wrap(err, "cannot build event logger")
	}

	return New(append([]Option{WithLogger(l), WithMaxDepth(cfg.MaxDepth)}, opts...)...), nil
}
