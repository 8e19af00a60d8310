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

// Package autowire is a dependency injection container that resolves values
// by identifier and wires constructor and method parameters by type.
//
// # Identifiers
//
// An identifier is a string. It names a component, a factory, or a type in
// the container's Catalog. Type identifiers are the package path and type
// name, as returned by NameOf:
//
//	autowire.NameOf[Server]() // "example.com/app/server.Server"
//
// A second kind of identifier pins one parameter of one method of one type:
//
//	autowire.ParamKey(autowire.NameOf[Server](), autowire.ConstructorMethod, "addr")
//	// "example.com/app/server.Server#New.addr"
//
// # Registry
//
// Set stores a component, SetFactory stores a factory, Has reports whether
// either is present and Clear drops both. Get returns the component if there
// is one, otherwise invokes the factory, otherwise constructs the type the
// catalog defines under the identifier and stores the instance as a
// component:
//
//	c := autowire.New()
//	c.Set("dsn", "postgres://localhost/app")
//	c.SetFactory("clock", func(*autowire.Container) (interface{}, error) {
//	    return time.Now, nil
//	})
//
// # Catalog
//
// Go does not record parameter names or defaults, so types that the
// container constructs or calls into are defined up front:
//
//	func init() {
//	    autowire.MustDefine[Server](
//	        autowire.Constructor(NewServer, autowire.Param("logger"), autowire.Param("addr").Optional(":80")),
//	        autowire.Method("serve", (*Server).Serve, autowire.Param("handler")),
//	    )
//	}
//
// # Parameters
//
// Each parameter of a constructor or called method is resolved in this
// order: an argument passed to Call under the parameter's name, a component
// or factory under its ParamKey, the value Get returns for its type and
// finally its default. A type defined with Named is looked up under that
// name. A parameter of a built-in type is only resolved by the
// first two or its default. When Get fails for an optional parameter, the
// default is used and the failure dropped.
//
// # Errors
//
// The container's own failures are a *NotFoundError, a *ConstructionError or
// a *ResolutionError, all implementing Error. Errors returned by called
// methods are passed through unchanged.
package autowire
