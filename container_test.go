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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/autowire/autowireevent"
)

func TestSetAndGet(t *testing.T) {
	c, spy := newContainer(t)

	bar := &Bar{id: 1}
	assert.Same(t, c, c.Set("bar", bar))
	assert.True(t, c.Has("bar"))

	for i := 0; i < 3; i++ {
		got, err := c.Get("bar")
		require.NoError(t, err)
		assert.Same(t, bar, got)
	}

	other := &Bar{id: 2}
	c.Set("bar", other)
	got, err := c.Get("bar")
	require.NoError(t, err)
	assert.Same(t, other, got, "last set wins")

	assert.Equal(t, []string{"ComponentSet", "ComponentSet"}, spy.EventTypes())
}

func TestSetNil(t *testing.T) {
	c, _ := newContainer(t)
	c.Set("nothing", nil)

	assert.True(t, c.Has("nothing"), "presence, not nil-ness, counts")
	got, err := c.Get("nothing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFactory(t *testing.T) {
	t.Run("fresh value per get", func(t *testing.T) {
		c, spy := newContainer(t)
		var calls int
		c.SetFactory("bar", func(*Container) (interface{}, error) {
			calls++
			return &Bar{id: calls}, nil
		})
		assert.True(t, c.Has("bar"))

		a, err := c.Get("bar")
		require.NoError(t, err)
		b, err := c.Get("bar")
		require.NoError(t, err)

		assert.NotSame(t, a, b)
		assert.Equal(t, 2, calls)
		assert.Equal(t, []string{"FactorySet", "FactoryInvoked", "FactoryInvoked"}, spy.EventTypes())
	})

	t.Run("factory caching its result", func(t *testing.T) {
		c, _ := newContainer(t)
		var calls int
		c.SetFactory("bar", func(c *Container) (interface{}, error) {
			calls++
			bar := &Bar{id: calls}
			c.Set("bar", bar)
			return bar, nil
		})

		a, err := c.Get("bar")
		require.NoError(t, err)
		b, err := c.Get("bar")
		require.NoError(t, err)

		assert.Same(t, a, b)
		assert.Equal(t, 1, calls)
	})

	t.Run("component shadows factory", func(t *testing.T) {
		c, _ := newContainer(t)
		bar := &Bar{}
		c.SetFactory("bar", failingFactory("never called")).Set("bar", bar)

		got, err := c.Get("bar")
		require.NoError(t, err)
		assert.Same(t, bar, got)
	})

	t.Run("factory shadows catalog", func(t *testing.T) {
		c, _ := newContainer(t)
		bar := &Bar{id: 7}
		c.SetFactory(NameOf[Bar](), func(*Container) (interface{}, error) { return bar, nil })

		foo, err := GetAs[*Foo](c, NameOf[Foo]())
		require.NoError(t, err)
		assert.Same(t, bar, foo.bar)
	})
}

func TestFactoryError(t *testing.T) {
	c, spy := newContainer(t)
	cause := errors.New("deep error")
	c.SetFactory("bar", func(*Container) (interface{}, error) { return nil, cause })

	_, err := c.Get("bar")
	require.Error(t, err)

	var cerr *ConstructionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "bar", cerr.ID)
	assert.Equal(t, "factory", cerr.Op)
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsConstruction(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "bar factory error: deep error", err.Error())

	events := spy.Events()
	require.Len(t, events, 2)
	invoked, ok := events[1].(*autowireevent.FactoryInvoked)
	require.True(t, ok)
	assert.Equal(t, err, invoked.Err)
}

func TestFactoryPanic(t *testing.T) {
	c, _ := newContainer(t)
	c.SetFactory("bar", func(*Container) (interface{}, error) { panic("great sadness") })

	_, err := c.Get("bar")
	require.Error(t, err)
	assert.True(t, IsConstruction(err))
	assert.Contains(t, err.Error(), "panic: great sadness")
}

func TestGetNotFound(t *testing.T) {
	c, _ := newContainer(t)

	_, err := c.Get("nope")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConstruction(err))
	assert.Equal(t, "nope not found", err.Error())

	_, err = c.Get(NameOf[Fooo]())
	assert.True(t, IsNotFound(err), "types missing from the catalog are not constructible")
}

func TestHasIgnoresCatalog(t *testing.T) {
	c, _ := newContainer(t)
	assert.False(t, c.Has(NameOf[Foo]()))

	_, err := c.Get(NameOf[Foo]())
	require.NoError(t, err)
	assert.True(t, c.Has(NameOf[Foo]()), "constructed instances are stored")
}

func TestClear(t *testing.T) {
	c, spy := newContainer(t)
	c.Set("bar", &Bar{}).SetFactory("baz", func(*Container) (interface{}, error) { return &Baz{}, nil })
	foo, err := c.Get(NameOf[Foo]())
	require.NoError(t, err)

	assert.Same(t, c, c.Clear())
	assert.False(t, c.Has("bar"))
	assert.False(t, c.Has("baz"))
	assert.False(t, c.Has(NameOf[Foo]()))
	assert.Equal(t, "Cleared", spy.EventTypes()[len(spy.EventTypes())-1])

	again, err := c.Get(NameOf[Foo]())
	require.NoError(t, err)
	assert.NotSame(t, foo, again, "catalog survives, instances do not")
}

func TestGetAs(t *testing.T) {
	c, _ := newContainer(t)
	c.Set("name", "gopher").Set("nothing", nil)

	name, err := GetAs[string](c, "name")
	require.NoError(t, err)
	assert.Equal(t, "gopher", name)

	bar, err := GetAs[*Bar](c, "nothing")
	require.NoError(t, err)
	assert.Nil(t, bar)

	_, err = GetAs[int](c, "name")
	require.Error(t, err)
	assert.Equal(t, "name: cannot convert string to int", err.Error())

	_, err = GetAs[int](c, "nope")
	assert.True(t, IsNotFound(err))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "go.uber.org/autowire.Foo", NameOf[Foo]())
	assert.Equal(t, NameOf[Foo](), NameOf[*Foo]())
	assert.Equal(t, "", NameOf[string]())
	assert.Equal(t, "", NameOf[[]Foo]())
	assert.Equal(t, "go.uber.org/autowire.Foo#method.bar", ParamKey(NameOf[Foo](), "method", "bar"))
}

func TestContainerString(t *testing.T) {
	c, _ := newContainer(t)
	c.Set("b", 2).Set("a", 1).SetFactory("f", failingFactory("unused"))

	assert.Equal(t, "{components:\na -> 1\nb -> 2\nfactories:\nf\n}\n", c.String())
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Same(t, DefaultCatalog(), c.Catalog())
	assert.Equal(t, autowireevent.NopLogger, c.log)
	assert.Zero(t, c.maxDepth)
}
