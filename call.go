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
	"reflect"

	"go.uber.org/autowire/autowireevent"
	"go.uber.org/autowire/internal/introspect"
)

// Call invokes a method with its parameters resolved by the container.
//
// target is either the name of a type defined in the catalog or an instance.
// The method is looked up among the methods defined for the target's type;
// for instances whose type does not define it, the exported method of that
// name is used, with its parameters named arg0, arg1, ... and all required.
// When target is a type name and the method needs a receiver, the receiver is
// obtained with Get.
//
// Arguments in overrides are matched by parameter name and used as is. See
// Container for how the other parameters are resolved.
//
// If the method's last result is an error and it is non-nil, Call returns it
// unchanged. Of the remaining results, none yields nil, one yields that value
// and several yield a []interface{} in declaration order.
func (c *Container) Call(target interface{}, method string, overrides ...Args) (interface{}, error) {
	owner, recv, sig, err := c.lookupMethod(target, method)
	if err != nil {
		return nil, err
	}

	args, err := c.resolveParams(sig, owner, mergeArgs(overrides))
	if err != nil {
		return nil, err
	}
	if recv.IsValid() {
		args = append([]reflect.Value{recv}, args...)
	}

	result, err := results(call(sig.Fn, args))
	c.log.LogEvent(&autowireevent.Called{Owner: owner, Method: method, Err: err})
	return result, err
}

func (c *Container) lookupMethod(target interface{}, method string) (
	owner string, recv reflect.Value, sig introspect.Signature, err error,
) {
	switch t := target.(type) {
	case nil:
		return "", recv, sig, &ResolutionError{Owner: "<nil>", Method: method, Reason: "no target"}
	case string:
		return c.lookupNamed(t, method)
	}

	rv := reflect.ValueOf(target)
	owner = TypeName(rv.Type())
	if owner == "" {
		owner = rv.Type().String()
	}

	if def, ok := c.catalog.LookupType(rv.Type()); ok {
		owner = def.name
		if m, ok := def.methods[method]; ok {
			if m.static {
				return owner, recv, m.sig, nil
			}
			recv, ok := introspect.Convert(target, m.sig.Receiver)
			if !ok {
				return "", recv, sig, &ResolutionError{
					Owner:  owner,
					Method: method,
					Reason: "target " + rv.Type().String() + " does not fit receiver " + m.sig.Receiver.String(),
				}
			}
			return owner, recv, m.sig, nil
		}
	}

	bound := rv.MethodByName(method)
	if !bound.IsValid() {
		return "", recv, sig, &ResolutionError{Owner: owner, Method: method, Reason: "method not found"}
	}
	sig, err = introspect.Describe(method, bound, false, nil)
	if err != nil {
		return "", recv, sig, &ResolutionError{Owner: owner, Method: method, Reason: "cannot describe method", Err: err}
	}
	return owner, recv, sig, nil
}

func (c *Container) lookupNamed(name, method string) (
	owner string, recv reflect.Value, sig introspect.Signature, err error,
) {
	def, ok := c.catalog.Lookup(name)
	if !ok {
		return "", recv, sig, &ResolutionError{
			Owner:  name,
			Method: method,
			Reason: "method not found",
			Err:    &NotFoundError{ID: name},
		}
	}

	m, ok := def.methods[method]
	if !ok {
		return "", recv, sig, &ResolutionError{Owner: name, Method: method, Reason: "method not found"}
	}
	if m.static {
		return name, recv, m.sig, nil
	}

	instance, err := c.Get(name)
	if err != nil {
		return "", recv, sig, err
	}
	recv, ok = introspect.Convert(instance, m.sig.Receiver)
	if !ok {
		return "", recv, sig, &ResolutionError{
			Owner:  name,
			Method: method,
			Reason: "instance does not fit receiver " + m.sig.Receiver.String(),
		}
	}
	return name, recv, m.sig, nil
}

// results shapes the results of a call. See Call.
func results(out []reflect.Value) (interface{}, error) {
	if n := len(out); n > 0 && introspect.IsErr(out[n-1].Type()) {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}

	vs := make([]interface{}, len(out))
	for i, v := range out {
		vs[i] = v.Interface()
	}
	return vs, nil
}

func mergeArgs(all []Args) Args {
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}

	merged := make(Args)
	for _, args := range all {
		for k, v := range args {
			merged[k] = v
		}
	}
	return merged
}
