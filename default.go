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

import "sync"

var (
	_defaultMu sync.Mutex
	_default   *Container
)

// Default returns the shared container, creating it on first use.
//
// Prefer passing a Container explicitly; the shared one exists for call
// sites that cannot be reached otherwise.
func Default() *Container {
	_defaultMu.Lock()
	defer _defaultMu.Unlock()

	if _default == nil {
		_default = New()
	}
	return _default
}

// Resolve gets id from the shared container.
func Resolve(id string) (interface{}, error) {
	return Default().Get(id)
}

// TryResolve gets id from the shared container if it is registered there as a
// component or factory, and returns nil otherwise. Failures of a registered
// factory are still reported.
func TryResolve(id string) (interface{}, error) {
	c := Default()
	if !c.Has(id) {
		return nil, nil
	}
	return c.Get(id)
}

// ResetDefault drops the shared container. The next call to Default creates a
// new one.
func ResetDefault() {
	_defaultMu.Lock()
	defer _defaultMu.Unlock()

	_default = nil
}
