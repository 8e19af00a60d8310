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
	"io"
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefine(t *testing.T) {
	cat := newCatalog(t)

	def, ok := cat.Lookup(NameOf[Foo]())
	require.True(t, ok)
	assert.Equal(t, NameOf[Foo](), def.Name())
	assert.Equal(t, reflect.TypeOf(Foo{}), def.Type())
	assert.Equal(t,
		[]string{"fail", "method", "methodWithDefault", "notFound", "notResolve", "panic", "staticMethod"},
		def.Methods())
	assert.Contains(t, def.String(), "staticMethod")

	byType, ok := cat.LookupType(reflect.TypeOf(&Foo{}))
	require.True(t, ok)
	assert.Same(t, def, byType, "T and *T share a definition")

	assert.Equal(t, []string{
		NameOf[Bar](), NameOf[Baz](), NameOf[Chicken](), NameOf[Egg](), NameOf[Foo](), NameOf[Settings](),
	}, cat.Names())
}

func TestDefineNamed(t *testing.T) {
	cat := NewCatalog()
	require.NoError(t, DefineIn[Bar](cat, Named("bar")))
	require.NoError(t, DefineIn[Foo](cat, Constructor(NewFoo, Param("bar"))))

	t.Run("parameters resolve the defined name", func(t *testing.T) {
		c := New(WithCatalog(cat))
		foo, err := GetAs[*Foo](c, NameOf[Foo]())
		require.NoError(t, err)

		bar, err := c.Get("bar")
		require.NoError(t, err)
		assert.Same(t, foo.bar, bar)
		assert.False(t, c.Has(NameOf[Bar]()), "the type name is not used")
	})

	t.Run("component under the defined name", func(t *testing.T) {
		c := New(WithCatalog(cat))
		pinned := &Bar{id: 7}
		c.Set("bar", pinned)

		foo, err := GetAs[*Foo](c, NameOf[Foo]())
		require.NoError(t, err)
		assert.Same(t, pinned, foo.bar)
	})

	t.Run("call uses the same identity", func(t *testing.T) {
		cat := NewCatalog()
		require.NoError(t, DefineIn[Bar](cat, Named("bar")))
		require.NoError(t, DefineIn[Foo](cat,
			Named("foo"),
			Constructor(NewFoo, Param("bar")),
			Method("notResolve", (*Foo).NotResolve, Param("arg")),
		))

		c := New(WithCatalog(cat))
		pinned := &Bar{id: 8}
		c.Set(ParamKey("foo", "notResolve", "arg"), pinned)

		got, err := c.Call("foo", "notResolve")
		require.NoError(t, err)
		assert.Same(t, pinned, got)

		foo, err := c.Get("foo")
		require.NoError(t, err)
		got, err = c.Call(foo, "notResolve")
		require.NoError(t, err)
		assert.Same(t, pinned, got)
	})
}

func TestDefineBuiltin(t *testing.T) {
	cat := NewCatalog()

	err := DefineIn[int](cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "built-in and unnamed types need an explicit name")

	require.NoError(t, DefineIn[int](cat, Named("answer"), Constructor(func() int { return 42 })))
	got, err := New(WithCatalog(cat)).Get("answer")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestDefineInterface(t *testing.T) {
	cat := NewCatalog()

	err := DefineIn[io.Writer](cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interfaces need a constructor")

	require.NoError(t, DefineIn[io.Writer](cat, Constructor(func() io.Writer { return io.Discard })))
	got, err := New(WithCatalog(cat)).Get("io.Writer")
	require.NoError(t, err)
	assert.Equal(t, io.Discard, got)
}

func TestDefineRedefine(t *testing.T) {
	cat := NewCatalog()
	require.NoError(t, DefineIn[Bar](cat, Named("first")))
	require.NoError(t, DefineIn[Bar](cat, Named("second")))

	_, ok := cat.Lookup("first")
	assert.False(t, ok, "redefining a type drops its old name")
	def, ok := cat.LookupType(reflect.TypeOf(Bar{}))
	require.True(t, ok)
	assert.Equal(t, "second", def.Name())

	require.NoError(t, DefineIn[Baz](cat, Named("second")))
	_, ok = cat.LookupType(reflect.TypeOf(Bar{}))
	assert.False(t, ok, "reusing a name drops the old type")
}

func TestDefineErrors(t *testing.T) {
	tests := []struct {
		desc string
		opts []TypeOption
		want []string
	}{
		{
			desc: "constructor not a function",
			opts: []TypeOption{Constructor(42)},
			want: []string{"constructor must be a function, got int"},
		},
		{
			desc: "constructor without results",
			opts: []TypeOption{Constructor(func() {})},
			want: []string{"must return (T) or (T, error)"},
		},
		{
			desc: "constructor second result not an error",
			opts: []TypeOption{Constructor(func() (*Foo, int) { return nil, 0 })},
			want: []string{"second result of constructor"},
		},
		{
			desc: "constructor of another type",
			opts: []TypeOption{Constructor(func() *Bar { return nil })},
			want: []string{"constructor returns *autowire.Bar, not autowire.Foo"},
		},
		{
			desc: "parameter count mismatch",
			opts: []TypeOption{Constructor(NewFoo, Param("bar"), Param("extra"))},
			want: []string{"New takes 1 parameters, got descriptors for 2"},
		},
		{
			desc: "bad default",
			opts: []TypeOption{Method("m", (*Foo).MethodWithDefault, Param("arg").Optional(3))},
			want: []string{`default 3 of parameter "arg" is not assignable to string`},
		},
		{
			desc: "receiver mismatch",
			opts: []TypeOption{Method("m", (*Bar).String)},
			want: []string{`method "m" has receiver *autowire.Bar, not autowire.Foo`},
		},
		{
			desc: "method not a function",
			opts: []TypeOption{Method("m", "nope")},
			want: []string{`method "m" must be a function, got string`},
		},
		{
			desc: "duplicate method",
			opts: []TypeOption{
				Method("m", (*Foo).Fail),
				Static("m", FooStaticMethod),
			},
			want: []string{`method "m" defined more than once`},
		},
		{
			desc: "everything reported",
			opts: []TypeOption{
				Constructor(42),
				Method("m", "nope"),
			},
			want: []string{"constructor must be a function", `method "m" must be a function`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			cat := NewCatalog()
			err := DefineIn[Foo](cat, tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot define autowire.Foo")
			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
			assert.Len(t, multierr.Errors(errors.Cause(err)), len(tt.want))
			assert.Empty(t, cat.Names(), "nothing is added")
		})
	}
}

func TestMustDefine(t *testing.T) {
	assert.Panics(t, func() {
		MustDefine[Foo](Constructor(42))
	})
	_, ok := DefaultCatalog().Lookup(NameOf[Foo]())
	assert.False(t, ok)
}

func TestTypeOptionStrings(t *testing.T) {
	assert.Equal(t, `autowire.Named("bar")`, Named("bar").String())
	assert.Equal(t, "autowire.Constructor(go.uber.org/autowire.NewFoo())", Constructor(NewFoo).String())
	assert.Equal(t, `autowire.Static("s", go.uber.org/autowire.FooStaticMethod())`,
		Static("s", FooStaticMethod).String())
	assert.Contains(t, Method("m", (*Foo).Fail).String(), `autowire.Method("m", `)
}

func (b *Bar) String() string { return "bar" }
