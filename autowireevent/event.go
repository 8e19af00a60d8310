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

import "time"

// Event defines an event emitted by an autowire container.
type Event interface {
	event() // Only autowireevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*ComponentSet) event()   {}
func (*FactorySet) event()     {}
func (*Cleared) event()        {}
func (*FactoryInvoked) event() {}
func (*Constructed) event()    {}
func (*Called) event()         {}
func (*ParamDefaulted) event() {}

// ComponentSet is emitted when a value is stored under an identifier.
type ComponentSet struct {
	ID string
}

// FactorySet is emitted when a factory is stored under an identifier.
type FactorySet struct {
	ID string
}

// Cleared is emitted when all components and factories are dropped.
type Cleared struct{}

// FactoryInvoked is emitted after a factory ran.
type FactoryInvoked struct {
	ID      string
	Runtime time.Duration

	// Err is non-nil if the factory failed or panicked.
	Err error
}

// Constructed is emitted after the container built an instance of a type
// from its catalog definition.
type Constructed struct {
	TypeName string

	// Constructor is the constructor function, or nil when the instance was
	// allocated as a zero value.
	Constructor interface{}
	Runtime     time.Duration
	Err         error
}

// Called is emitted after a method was invoked through the container.
type Called struct {
	Owner  string
	Method string
	Err    error
}

// ParamDefaulted is emitted when resolving an optional parameter failed and
// the container fell back to the parameter's default value.
type ParamDefaulted struct {
	Owner  string
	Method string
	Param  string

	// Err is the resolution failure that was suppressed.
	Err error
}
