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

// Package introspect describes constructors and methods in terms of the
// parameters the autowire resolver has to supply.
package introspect

import (
	"fmt"
	"math"
	"reflect"
	"runtime"

	"github.com/pkg/errors"
)

var _errType = reflect.TypeOf((*error)(nil)).Elem()

// Spec is the caller-supplied metadata for a single parameter. Go's reflect
// package exposes parameter types but not their names or defaults.
type Spec struct {
	Name     string
	Optional bool
	Default  interface{}
}

// Param describes one parameter of a callable as seen by the resolver.
type Param struct {
	Name   string
	Method string
	Type   reflect.Type

	// TypeName is empty for built-in and unnamed types. Only parameters with
	// a TypeName take part in type-driven resolution.
	TypeName string

	Optional bool
	Default  interface{} // valid only if Optional
}

func (p Param) String() string {
	if p.Optional {
		return fmt.Sprintf("%s %v = %v", p.Name, p.Type, p.Default)
	}
	return fmt.Sprintf("%s %v", p.Name, p.Type)
}

// Signature is a callable along with the parameters the container has to
// supply. For method expressions the receiver is the first input of Fn and is
// not listed in Params.
type Signature struct {
	Method   string
	Fn       reflect.Value
	Receiver reflect.Type
	Params   []Param
}

// Describe builds the Signature of fn. When hasReceiver is set, the first
// input of fn is treated as the receiver. If specs is empty the parameters are
// named arg0, arg1, ... and are all required.
func Describe(method string, fn reflect.Value, hasReceiver bool, specs []Spec) (Signature, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return Signature{}, errors.Errorf("%v is not a function", fn)
	}

	ft := fn.Type()
	skip := 0
	sig := Signature{Method: method, Fn: fn}
	if hasReceiver {
		if ft.NumIn() == 0 {
			return Signature{}, errors.Errorf("method %q must take its receiver as the first argument", method)
		}
		sig.Receiver = ft.In(0)
		skip = 1
	}

	n := ft.NumIn() - skip
	if len(specs) > 0 && len(specs) != n {
		return Signature{}, errors.Errorf(
			"%s takes %d parameters, got descriptors for %d", method, n, len(specs))
	}

	sig.Params = make([]Param, n)
	for i := 0; i < n; i++ {
		t := ft.In(i + skip)
		spec := Spec{Name: fmt.Sprintf("arg%d", i)}
		if len(specs) > 0 {
			spec = specs[i]
		}
		if spec.Optional {
			if _, ok := Convert(spec.Default, t); !ok {
				return Signature{}, errors.Errorf(
					"default %v of parameter %q is not assignable to %v", spec.Default, spec.Name, t)
			}
		}
		sig.Params[i] = Param{
			Name:     spec.Name,
			Method:   method,
			Type:     t,
			TypeName: TypeName(t),
			Optional: spec.Optional,
			Default:  spec.Default,
		}
	}
	return sig, nil
}

// TypeName returns the identifier of t: its package path and name joined by
// a dot. One level of pointer is stripped so T and *T share a name.
// Predeclared and unnamed types yield "".
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Ptr && t.Name() == "" {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return ""
	}
	return t.PkgPath() + "." + t.Name()
}

// Deref strips one level of unnamed pointer.
func Deref(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr && t.Name() == "" {
		return t.Elem()
	}
	return t
}

// IsErr reports whether t implements error.
func IsErr(t reflect.Type) bool {
	return t.Implements(_errType)
}

// Convert adapts v for use as an argument of type t.
//
// nil becomes the zero value of nillable types, pointers are dereferenced when
// the element fits, and values are converted between kinds of the same family
// (numbers to numbers, strings to strings). Numbers that would overflow t or
// lose a fractional part are rejected.
func Convert(v interface{}, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Type().AssignableTo(t) {
		return rv.Elem(), true
	}
	if f := family(rv.Kind()); f != 0 && f == family(t.Kind()) && rv.Type().ConvertibleTo(t) {
		if f == _numeric && !fits(rv, t) {
			return reflect.Value{}, false
		}
		return rv.Convert(t), true
	}
	return reflect.Value{}, false
}

// fits reports whether the number in v is representable as t without
// overflow or loss of a fractional part.
func fits(v reflect.Value, t reflect.Type) bool {
	dst := reflect.New(t).Elem()
	switch {
	case isInt(v.Kind()):
		i := v.Int()
		switch {
		case isInt(t.Kind()):
			return !dst.OverflowInt(i)
		case isUint(t.Kind()):
			return i >= 0 && !dst.OverflowUint(uint64(i))
		}
		return !dst.OverflowFloat(float64(i))
	case isUint(v.Kind()):
		u := v.Uint()
		switch {
		case isInt(t.Kind()):
			return u <= math.MaxInt64 && !dst.OverflowInt(int64(u))
		case isUint(t.Kind()):
			return !dst.OverflowUint(u)
		}
		return !dst.OverflowFloat(float64(u))
	}

	f := v.Float()
	switch {
	case isInt(t.Kind()):
		return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !dst.OverflowInt(int64(f))
	case isUint(t.Kind()):
		return f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 && !dst.OverflowUint(uint64(f))
	}
	return !dst.OverflowFloat(f)
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

const (
	_bool = iota + 1
	_numeric
	_string
)

func family(k reflect.Kind) int {
	switch {
	case k == reflect.Bool:
		return _bool
	case isInt(k), isUint(k), k == reflect.Float32, k == reflect.Float64:
		return _numeric
	case k == reflect.String:
		return _string
	}
	return 0
}

// FuncName returns the name of fn as package path, function name and "()",
// or "n/a" when fn is not a function.
func FuncName(fn interface{}) string {
	var fnV reflect.Value
	switch f := fn.(type) {
	case reflect.Value:
		fnV = f
	default:
		fnV = reflect.ValueOf(fn)
	}
	if !fnV.IsValid() || fnV.Kind() != reflect.Func {
		return "n/a"
	}

	fnName := runtime.FuncForPC(fnV.Pointer()).Name()
	return fmt.Sprintf("%s()", fnName)
}
