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

package autowireevent

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NopLogger.LogEvent(&Cleared{})
	})
	assert.Equal(t, "NopLogger", NopLogger.String())
}

func TestTee(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, NopLogger, Tee())
	})

	t.Run("single", func(t *testing.T) {
		l := &ConsoleLogger{W: &bytes.Buffer{}}
		assert.Same(t, l, Tee(l))
	})

	t.Run("fan out", func(t *testing.T) {
		var a, b bytes.Buffer
		Tee(&ConsoleLogger{W: &a}, &ConsoleLogger{W: &b}).LogEvent(&ComponentSet{ID: "x"})

		assert.Equal(t, "[Autowire] SET\t\tx\n", a.String())
		assert.Equal(t, a.String(), b.String())
	})
}
