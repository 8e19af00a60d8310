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

// Package digbridge connects autowire containers with dig containers.
//
// Values provided to a dig container can back autowire identifiers, and
// values held by an autowire container can be provided to dig.
package digbridge

import (
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/autowire"
	"go.uber.org/dig"
)

// Factory returns an autowire factory that resolves T from dc. dig
// constructs each type once, so every call yields the same value.
func Factory[T any](dc *dig.Container) autowire.Factory {
	return func(*autowire.Container) (interface{}, error) {
		var out T
		err := dc.Invoke(func(v T) { out = v })
		if err != nil {
			return nil, errors.Wrapf(err, "cannot resolve %v from dig", typeOf[T]())
		}
		return out, nil
	}
}

// Bind registers Factory[T](dc) in c under the identifier of T.
func Bind[T any](c *autowire.Container, dc *dig.Container) *autowire.Container {
	return c.SetFactory(autowire.NameOf[T](), Factory[T](dc))
}

// Provide provides T to dc, obtained from c under id. An empty id stands for
// the identifier of T.
func Provide[T any](dc *dig.Container, c *autowire.Container, id string) error {
	if id == "" {
		id = autowire.NameOf[T]()
	}
	if id == "" {
		return errors.Errorf("%v has no identifier; pass one explicitly", typeOf[T]())
	}

	return dc.Provide(func() (T, error) {
		return autowire.GetAs[T](c, id)
	})
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
