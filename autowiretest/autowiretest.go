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

// Package autowiretest provides helpers for tests of code wired through
// autowire containers.
package autowiretest

import (
	"bytes"

	"go.uber.org/autowire"
	"go.uber.org/autowire/autowireevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
	Cleanup(func())
}

// New returns a container that logs its events to the test log. The given
// options are applied after the logger, so they may replace it.
func New(t TB, opts ...autowire.Option) *autowire.Container {
	opts = append([]autowire.Option{
		autowire.WithLogger(&autowireevent.ConsoleLogger{W: testWriter{t}}),
	}, opts...)
	return autowire.New(opts...)
}

// MustGet calls c.Get, failing the test if an error is encountered.
func MustGet(t TB, c *autowire.Container, id string) interface{} {
	v, err := c.Get(id)
	if err != nil {
		t.Errorf("cannot get %q: %+v", id, err)
		t.FailNow()
	}
	return v
}

// MustCall calls c.Call, failing the test if an error is encountered.
func MustCall(t TB, c *autowire.Container, target interface{}, method string, overrides ...autowire.Args) interface{} {
	v, err := c.Call(target, method, overrides...)
	if err != nil {
		t.Errorf("cannot call %v#%s: %+v", target, method, err)
		t.FailNow()
	}
	return v
}

// UseDefault gives the test a fresh shared container and drops it once the
// test is done.
func UseDefault(t TB) *autowire.Container {
	autowire.ResetDefault()
	t.Cleanup(func() {
		autowire.Default().Clear()
		autowire.ResetDefault()
	})
	return autowire.Default()
}

// testWriter sends each line written to it to the test log.
type testWriter struct{ t TB }

func (w testWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		w.t.Logf("%s", line)
	}
	return len(p), nil
}
