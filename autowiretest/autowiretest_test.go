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

package autowiretest

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/autowire"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Verify that TB always matches testing.T.
var _ TB = (*testing.T)(nil)

type tb struct {
	failures int
	errors   *bytes.Buffer
	logs     *bytes.Buffer
	cleanups []func()
}

func newTB() *tb {
	return &tb{errors: &bytes.Buffer{}, logs: &bytes.Buffer{}}
}

func (t *tb) FailNow() {
	t.failures++
}

func (t *tb) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(t.errors, format, args...)
	t.errors.WriteRune('\n')
}

func (t *tb) Logf(format string, args ...interface{}) {
	fmt.Fprintf(t.logs, format, args...)
	t.logs.WriteRune('\n')
}

func (t *tb) Cleanup(f func()) {
	t.cleanups = append(t.cleanups, f)
}

func (t *tb) runCleanups() {
	for i := len(t.cleanups) - 1; i >= 0; i-- {
		t.cleanups[i]()
	}
}

type greeter struct{ name string }

func (g *greeter) Greet(greeting string) string { return greeting + ", " + g.name }

func TestNewLogsToTest(t *testing.T) {
	spy := newTB()
	New(spy).Set("name", "gopher")

	assert.Equal(t, "[Autowire] SET\t\tname\n", spy.logs.String())
}

func TestMustGet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		spy := newTB()
		c := New(spy).Set("name", "gopher")

		assert.Equal(t, "gopher", MustGet(spy, c, "name"))
		assert.Zero(t, spy.failures)
		assert.Empty(t, spy.errors.String())
	})

	t.Run("failure", func(t *testing.T) {
		spy := newTB()
		c := New(spy)

		assert.Nil(t, MustGet(spy, c, "name"))
		assert.Equal(t, 1, spy.failures)
		assert.Contains(t, spy.errors.String(), `cannot get "name"`)
		assert.Contains(t, spy.errors.String(), "name not found")
	})
}

func TestMustCall(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		spy := newTB()
		c := New(spy)

		got := MustCall(spy, c, &greeter{name: "gopher"}, "Greet", autowire.Args{"arg0": "hello"})
		assert.Equal(t, "hello, gopher", got)
		assert.Zero(t, spy.failures)
	})

	t.Run("failure", func(t *testing.T) {
		spy := newTB()
		c := New(spy)

		MustCall(spy, c, &greeter{}, "Wave")
		assert.Equal(t, 1, spy.failures)
		assert.Contains(t, spy.errors.String(), "method not found")
	})
}

func TestUseDefault(t *testing.T) {
	spy := newTB()

	c := UseDefault(spy)
	require.Same(t, autowire.Default(), c)
	c.Set("name", "gopher")
	c.SetFactory("broken", func(*autowire.Container) (interface{}, error) {
		return nil, errors.New("great sadness")
	})

	v, err := autowire.Resolve("name")
	require.NoError(t, err)
	assert.Equal(t, "gopher", v)

	spy.runCleanups()
	assert.False(t, autowire.Default().Has("name"))
	assert.NotSame(t, c, autowire.Default())
	assert.False(t, c.Has("broken"), "old container is cleared")
}
