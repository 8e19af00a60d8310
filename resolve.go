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
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/autowire/autowireevent"
	"go.uber.org/autowire/internal/introspect"
)

// build constructs an instance of the type defined under name and stores it
// as a component under the same name.
func (c *Container) build(name string) (interface{}, error) {
	def, ok := c.catalog.Lookup(name)
	if !ok {
		return nil, &NotFoundError{ID: name}
	}

	if err := c.enter(name); err != nil {
		return nil, err
	}
	defer c.leave()

	start := c.clock.Now()
	instance, err := c.construct(def)

	var ctor interface{}
	if def.ctor != nil {
		ctor = def.ctor.Fn.Interface()
	}
	c.log.LogEvent(&autowireevent.Constructed{
		TypeName:    name,
		Constructor: ctor,
		Runtime:     c.clock.Since(start),
		Err:         err,
	})
	if err != nil {
		return nil, err
	}

	c.components[name] = instance
	return instance, nil
}

func (c *Container) construct(def *TypeDef) (interface{}, error) {
	if def.ctor == nil {
		return def.zero(), nil
	}

	// Parameter failures surface unchanged.
	args, err := c.resolveParams(*def.ctor, def.name, nil)
	if err != nil {
		return nil, err
	}

	out, err := callRecover(def.ctor.Fn, args)
	if err == nil && len(out) == 2 && !out[1].IsNil() {
		err = out[1].Interface().(error)
	}
	if err != nil {
		return nil, &ConstructionError{ID: def.name, Op: "constructor", Err: err}
	}
	return out[0].Interface(), nil
}

// enter pushes name onto the construction stack, failing if the type is
// already being constructed or the stack is too deep.
func (c *Container) enter(name string) error {
	for i, n := range c.building {
		if n == name {
			chain := append(append([]string(nil), c.building[i:]...), name)
			return &ResolutionError{
				Owner:  name,
				Method: ConstructorMethod,
				Reason: "circular dependency: " + strings.Join(chain, " -> "),
			}
		}
	}
	if c.maxDepth > 0 && len(c.building) >= c.maxDepth {
		return &ResolutionError{
			Owner:  name,
			Method: ConstructorMethod,
			Reason: fmt.Sprintf("dependency chain deeper than %d", c.maxDepth),
		}
	}
	c.building = append(c.building, name)
	return nil
}

func (c *Container) leave() {
	c.building = c.building[:len(c.building)-1]
}

// resolveParams works out the arguments for sig. owner is the name of the
// type sig belongs to, used to build override keys.
func (c *Container) resolveParams(sig introspect.Signature, owner string, overrides Args) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(sig.Params))
	for i, p := range sig.Params {
		v, err := c.resolveParam(p, owner, overrides)
		if err != nil {
			return nil, err
		}

		arg, ok := introspect.Convert(v, p.Type)
		if !ok {
			return nil, &ResolutionError{
				Owner:  owner,
				Method: p.Method,
				Param:  p.Name,
				Reason: fmt.Sprintf("cannot use %T as %v", v, p.Type),
			}
		}
		args[i] = arg
	}
	return args, nil
}

// resolveParam picks the value of a single parameter. In order of
// precedence: an explicit argument by parameter name, a component or factory
// under the parameter's override key, the value for the parameter's type
// (under the name it is defined with, if any), the parameter's default.
func (c *Container) resolveParam(p introspect.Param, owner string, overrides Args) (interface{}, error) {
	if v, ok := overrides[p.Name]; ok {
		return v, nil
	}

	if key := ParamKey(owner, p.Method, p.Name); c.Has(key) {
		return c.Get(key)
	}

	if p.TypeName == "" {
		if p.Optional {
			return p.Default, nil
		}
		return nil, &ResolutionError{
			Owner:  owner,
			Method: p.Method,
			Param:  p.Name,
			Reason: fmt.Sprintf("cannot infer a value of built-in type %v", p.Type),
		}
	}

	id := p.TypeName
	if def, ok := c.catalog.LookupType(p.Type); ok {
		id = def.name
	}
	v, err := c.Get(id)
	if err != nil {
		if !p.Optional {
			return nil, err
		}
		c.log.LogEvent(&autowireevent.ParamDefaulted{
			Owner:  owner,
			Method: p.Method,
			Param:  p.Name,
			Err:    err,
		})
		return p.Default, nil
	}
	return v, nil
}

// callRecover calls fn, turning a panic into an error.
func callRecover(fn reflect.Value, args []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return call(fn, args), nil
}

func call(fn reflect.Value, args []reflect.Value) []reflect.Value {
	if fn.Type().IsVariadic() {
		return fn.CallSlice(args)
	}
	return fn.Call(args)
}
