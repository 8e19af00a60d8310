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
	"bytes"
	"fmt"
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/autowire/autowireevent"
	"go.uber.org/autowire/internal/clock"
	"go.uber.org/autowire/internal/introspect"
)

// Factory produces the value for an identifier. It runs on every Get of that
// identifier; to cache its result, a factory stores it back with c.Set.
type Factory func(c *Container) (interface{}, error)

// Args holds explicit arguments for Call, keyed by parameter name.
type Args map[string]interface{}

// Container resolves values by identifier. Identifiers name components
// (stored values), factories, or types defined in the container's Catalog.
//
// A Container is not safe for concurrent use.
type Container struct {
	components map[string]interface{}
	factories  map[string]Factory

	catalog  *Catalog
	log      autowireevent.Logger
	clock    clock.Clock
	maxDepth int

	// names of the types being constructed, outermost first
	building []string
}

// New returns an empty Container.
func New(opts ...Option) *Container {
	c := &Container{
		components: make(map[string]interface{}),
		factories:  make(map[string]Factory),
		catalog:    _defaultCatalog,
		log:        autowireevent.NopLogger,
		clock:      clock.System,
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Has reports whether id is registered as a component or a factory. Types
// that Get could construct from the catalog do not count.
func (c *Container) Has(id string) bool {
	if _, ok := c.components[id]; ok {
		return true
	}
	_, ok := c.factories[id]
	return ok
}

// Get returns the value for id.
//
// A component registered with Set is returned as is. Otherwise a factory
// registered with SetFactory is invoked; its failure is returned as a
// *ConstructionError. Otherwise, if the catalog defines id, an instance is
// constructed, stored as a component under id and returned. Otherwise Get
// fails with a *NotFoundError.
func (c *Container) Get(id string) (interface{}, error) {
	if v, ok := c.components[id]; ok {
		return v, nil
	}

	if f, ok := c.factories[id]; ok {
		return c.invokeFactory(id, f)
	}

	return c.build(id)
}

// Set stores v under id, replacing any earlier component.
func (c *Container) Set(id string, v interface{}) *Container {
	c.components[id] = v
	c.log.LogEvent(&autowireevent.ComponentSet{ID: id})
	return c
}

// SetFactory stores f under id, replacing any earlier factory. A component
// stored under the same id takes precedence over f.
func (c *Container) SetFactory(id string, f Factory) *Container {
	c.factories[id] = f
	c.log.LogEvent(&autowireevent.FactorySet{ID: id})
	return c
}

// Clear drops all components and factories. The catalog and any
// construction in progress are left untouched.
func (c *Container) Clear() *Container {
	c.components = make(map[string]interface{})
	c.factories = make(map[string]Factory)
	c.log.LogEvent(&autowireevent.Cleared{})
	return c
}

// Catalog returns the catalog the container constructs types from.
func (c *Container) Catalog() *Catalog {
	return c.catalog
}

func (c *Container) String() string {
	b := &bytes.Buffer{}
	fmt.Fprintln(b, "{components:")
	for _, id := range sortedKeys(c.components) {
		fmt.Fprintln(b, id, "->", c.components[id])
	}
	fmt.Fprintln(b, "factories:")
	for _, id := range sortedKeys(c.factories) {
		fmt.Fprintln(b, id)
	}
	fmt.Fprintln(b, "}")
	return b.String()
}

func (c *Container) invokeFactory(id string, f Factory) (v interface{}, err error) {
	start := c.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, &ConstructionError{ID: id, Op: "factory", Err: errors.Errorf("panic: %v", r)}
		}
		c.log.LogEvent(&autowireevent.FactoryInvoked{ID: id, Runtime: c.clock.Since(start), Err: err})
	}()

	v, err = f(c)
	if err != nil {
		return nil, &ConstructionError{ID: id, Op: "factory", Err: err}
	}
	return v, nil
}

// NameOf returns the identifier of type T: its package path and name, e.g.
// "net/http.Client". T and *T share a name. Built-in and unnamed types have
// no name and yield "".
func NameOf[T any]() string {
	return TypeName(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeName returns the identifier of t. See NameOf.
func TypeName(t reflect.Type) string {
	return introspect.TypeName(t)
}

// ParamKey returns the override key for parameter param of method on the
// type named owner. A component stored under this key is used for that
// parameter in preference to type-driven resolution.
func ParamKey(owner, method, param string) string {
	return owner + "#" + method + "." + param
}

// GetAs is a generic helper around Get that asserts the result to T.
//
//	db, err := autowire.GetAs[*sql.DB](c, "db")
func GetAs[T any](c *Container, id string) (T, error) {
	var zero T

	v, err := c.Get(id)
	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	out, ok := v.(T)
	if !ok {
		return zero, errors.Errorf("%s: cannot convert %T to %v", id, v, reflect.TypeOf((*T)(nil)).Elem())
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
