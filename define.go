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
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/autowire/internal/introspect"
	"go.uber.org/multierr"
)

// ConstructorMethod is the method name used in override keys for constructor
// parameters.
//
//	c.Set(autowire.ParamKey(autowire.NameOf[Server](), autowire.ConstructorMethod, "addr"), ":8080")
const ConstructorMethod = "New"

// Catalog is a table of type definitions. It tells the container how to
// construct a type by name and which methods it may call on it, along with
// the names, optionality and defaults of their parameters.
//
// Catalog is safe for concurrent use; definitions are usually added from init
// functions.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]*TypeDef
	byType map[reflect.Type]*TypeDef
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]*TypeDef),
		byType: make(map[reflect.Type]*TypeDef),
	}
}

var _defaultCatalog = NewCatalog()

// DefaultCatalog returns the process-wide catalog used by Define and by
// containers created without WithCatalog.
func DefaultCatalog() *Catalog {
	return _defaultCatalog
}

// Define adds the definition of type T to the default catalog.
//
//	autowire.Define[Foo](
//		autowire.Constructor(NewFoo, autowire.Param("bar")),
//		autowire.Method("run", (*Foo).Run, autowire.Param("limit").Optional(10)),
//	)
func Define[T any](opts ...TypeOption) error {
	return DefineIn[T](_defaultCatalog, opts...)
}

// MustDefine is like Define but panics if the definition is invalid.
func MustDefine[T any](opts ...TypeOption) {
	if err := Define[T](opts...); err != nil {
		panic(err)
	}
}

// DefineIn adds the definition of type T to cat.
func DefineIn[T any](cat *Catalog, opts ...TypeOption) error {
	return cat.Define(reflect.TypeOf((*T)(nil)).Elem(), opts...)
}

// Define adds the definition of t. A later definition of the same name
// replaces the earlier one. All problems with the definition are reported
// together and nothing is added if there are any.
func (c *Catalog) Define(t reflect.Type, opts ...TypeOption) error {
	var d definition
	for _, opt := range opts {
		opt.apply(&d)
	}

	def, err := d.build(t)
	if err != nil {
		return errors.Wrapf(err, "cannot define %v", t)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.byType[def.key]; ok {
		delete(c.byName, old.name)
	}
	if old, ok := c.byName[def.name]; ok {
		delete(c.byType, old.key)
	}
	c.byName[def.name] = def
	c.byType[def.key] = def
	return nil
}

// Lookup returns the definition registered under name.
func (c *Catalog) Lookup(name string) (*TypeDef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.byName[name]
	return def, ok
}

// LookupType returns the definition of t. T and *T share a definition.
func (c *Catalog) LookupType(t reflect.Type) (*TypeDef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.byType[introspect.Deref(t)]
	return def, ok
}

// Names returns the names of all definitions, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeDef is a validated type definition.
type TypeDef struct {
	name string
	typ  reflect.Type
	key  reflect.Type // typ with one level of pointer stripped

	// nil if instances are allocated as zero values.
	ctor    *introspect.Signature
	methods map[string]methodDef
}

type methodDef struct {
	sig    introspect.Signature
	static bool
}

// Name returns the identifier of the type.
func (d *TypeDef) Name() string { return d.name }

// Type returns the defined type.
func (d *TypeDef) Type() reflect.Type { return d.typ }

// Methods returns the names of the methods that may be called through the
// container, sorted.
func (d *TypeDef) Methods() []string {
	names := make([]string, 0, len(d.methods))
	for name := range d.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *TypeDef) String() string {
	return fmt.Sprintf("%s{methods: [%s]}", d.name, strings.Join(d.Methods(), ", "))
}

// zero allocates a new zero value of the type. Struct types yield a pointer.
func (d *TypeDef) zero() interface{} {
	if d.typ.Kind() == reflect.Ptr {
		return reflect.New(d.typ.Elem()).Interface()
	}
	return reflect.New(d.typ).Interface()
}

// TypeOption configures a type definition.
type TypeOption interface {
	fmt.Stringer

	apply(*definition)
}

// definition collects the raw options before validation.
type definition struct {
	name    string
	ctor    *callableOption
	methods []callableOption
}

type callableOption struct {
	name   string
	fn     interface{}
	params []ParamSpec
	static bool
}

// Named overrides the identifier a type is defined under. By default it is
// NameOf the type.
func Named(id string) TypeOption {
	return namedOption(id)
}

type namedOption string

func (o namedOption) apply(d *definition) { d.name = string(o) }

func (o namedOption) String() string { return fmt.Sprintf("autowire.Named(%q)", string(o)) }

// Constructor sets the function used to build instances of the type. It must
// return the type (or a pointer to it), optionally followed by an error.
// Without a constructor the container allocates a zero value.
func Constructor(fn interface{}, params ...ParamSpec) TypeOption {
	return constructorOption{callableOption{name: ConstructorMethod, fn: fn, params: params}}
}

type constructorOption struct{ callableOption }

func (o constructorOption) apply(d *definition) {
	c := o.callableOption
	d.ctor = &c
}

func (o constructorOption) String() string {
	return fmt.Sprintf("autowire.Constructor(%s)", introspect.FuncName(o.fn))
}

// Method declares a method that may be called on instances of the type. fn is
// a method expression such as (*Foo).Run: its first argument is the receiver.
func Method(name string, fn interface{}, params ...ParamSpec) TypeOption {
	return methodOption{callableOption{name: name, fn: fn, params: params}}
}

// Static declares a function that may be called through the type's name
// without an instance.
func Static(name string, fn interface{}, params ...ParamSpec) TypeOption {
	return methodOption{callableOption{name: name, fn: fn, params: params, static: true}}
}

type methodOption struct{ callableOption }

func (o methodOption) apply(d *definition) {
	d.methods = append(d.methods, o.callableOption)
}

func (o methodOption) String() string {
	kind := "Method"
	if o.static {
		kind = "Static"
	}
	return fmt.Sprintf("autowire.%s(%q, %s)", kind, o.name, introspect.FuncName(o.fn))
}

// ParamSpec names a parameter and, if it is optional, its default value.
type ParamSpec struct {
	spec introspect.Spec
}

// Param describes a required parameter called name.
func Param(name string) ParamSpec {
	return ParamSpec{spec: introspect.Spec{Name: name}}
}

// Optional marks the parameter optional with the given default. The default
// is used when no value can be resolved for the parameter.
func (p ParamSpec) Optional(def interface{}) ParamSpec {
	p.spec.Optional = true
	p.spec.Default = def
	return p
}

func specs(params []ParamSpec) []introspect.Spec {
	if len(params) == 0 {
		return nil
	}
	out := make([]introspect.Spec, len(params))
	for i, p := range params {
		out[i] = p.spec
	}
	return out
}

func (d *definition) build(t reflect.Type) (*TypeDef, error) {
	def := &TypeDef{
		name:    d.name,
		typ:     t,
		key:     introspect.Deref(t),
		methods: make(map[string]methodDef, len(d.methods)),
	}
	if def.name == "" {
		def.name = introspect.TypeName(t)
	}

	var errs error
	if def.name == "" {
		errs = multierr.Append(errs, errors.New("built-in and unnamed types need an explicit name"))
	}

	if d.ctor != nil {
		sig, err := buildConstructor(t, *d.ctor)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			def.ctor = &sig
		}
	} else if t.Kind() == reflect.Interface {
		errs = multierr.Append(errs, errors.New("interfaces need a constructor"))
	}

	for _, m := range d.methods {
		if _, dup := def.methods[m.name]; dup {
			errs = multierr.Append(errs, errors.Errorf("method %q defined more than once", m.name))
			continue
		}
		sig, err := buildMethod(t, m)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		def.methods[m.name] = methodDef{sig: sig, static: m.static}
	}

	if errs != nil {
		return nil, errs
	}
	return def, nil
}

func buildConstructor(t reflect.Type, o callableOption) (introspect.Signature, error) {
	fn := reflect.ValueOf(o.fn)
	if fn.Kind() != reflect.Func {
		return introspect.Signature{}, errors.Errorf("constructor must be a function, got %T", o.fn)
	}

	ft := fn.Type()
	switch {
	case ft.NumOut() == 0 || ft.NumOut() > 2:
		return introspect.Signature{}, errors.Errorf("constructor %v must return (T) or (T, error)", ft)
	case ft.NumOut() == 2 && !introspect.IsErr(ft.Out(1)):
		return introspect.Signature{}, errors.Errorf("second result of constructor %v must be an error", ft)
	}
	if out := ft.Out(0); !out.AssignableTo(t) && introspect.Deref(out) != introspect.Deref(t) {
		return introspect.Signature{}, errors.Errorf("constructor returns %v, not %v", out, t)
	}

	return introspect.Describe(o.name, fn, false, specs(o.params))
}

func buildMethod(t reflect.Type, o callableOption) (introspect.Signature, error) {
	fn := reflect.ValueOf(o.fn)
	if fn.Kind() != reflect.Func {
		return introspect.Signature{}, errors.Errorf("method %q must be a function, got %T", o.name, o.fn)
	}

	sig, err := introspect.Describe(o.name, fn, !o.static, specs(o.params))
	if err != nil {
		return introspect.Signature{}, err
	}
	if !o.static && introspect.Deref(sig.Receiver) != introspect.Deref(t) {
		return introspect.Signature{}, errors.Errorf(
			"method %q has receiver %v, not %v", o.name, sig.Receiver, t)
	}
	return sig, nil
}
