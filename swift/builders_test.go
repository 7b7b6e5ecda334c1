// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package swift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/gentok/swift"
)

func TestClass(t *testing.T) {
	t.Parallel()

	c := swift.NewClass("Foo")
	c.Parameters.Append("T")
	c.Implements = []swift.Swift{swift.Local("Super")}
	assert.Equal(t, "Foo", c.Name())
	assert.Equal(t, "public class Foo<T> : Super {\n}", render(t, c.Tokens()))
}

func TestStruct(t *testing.T) {
	t.Parallel()

	s := swift.NewStruct("Foo")
	s.Implements = []swift.Swift{swift.Local("Equatable"), swift.Local("Hashable")}
	assert.Equal(t, "public struct Foo : Equatable, Hashable {\n}", render(t, s.Tokens()))
}

func TestExtension(t *testing.T) {
	t.Parallel()

	e := swift.NewExtension("Foo")
	e.Parameters.Append("T")
	e.Implements = []swift.Swift{swift.Local("Super")}
	assert.Equal(t, "public extension Foo<T> : Super {\n}", render(t, e.Tokens()))
}

func TestProtocol(t *testing.T) {
	t.Parallel()

	p := swift.NewProtocol("Foo")
	p.Parameters.Append("T")
	p.Implements = []swift.Swift{swift.Local("Super")}
	assert.Equal(t, "public protocol Foo<T> : Super {\n}", render(t, p.Tokens()))
}

func TestProtocolMethods(t *testing.T) {
	t.Parallel()

	p := swift.NewProtocol("Foo")
	p.Methods = append(p.Methods, swift.NewMethod("bar"))
	assert.Equal(t, "public protocol Foo {\n  public func bar();\n}", render(t, p.Tokens()))
}

func TestEnum(t *testing.T) {
	t.Parallel()

	e := swift.NewEnum("Foo")
	foo := &swift.Tokens{}
	foo.Append("FOO(int)")
	bar := &swift.Tokens{}
	bar.Append("BAR")
	e.Variants = []*swift.Tokens{foo, bar}
	assert.Equal(t, "public enum Foo {\n  case FOO(int)\n  case BAR\n}", render(t, e.Tokens()))
}

func TestClassMembers(t *testing.T) {
	t.Parallel()

	c := swift.NewClass("Foo")
	c.Fields = append(c.Fields, swift.NewField(swift.Local("Int"), "count"))
	c.Constructors = append(c.Constructors, swift.NewConstructor())
	c.Methods = append(c.Methods, swift.NewMethod("bar"))
	assert.Equal(t,
		"public class Foo {\n"+
			"  private let count : Int\n\n"+
			"  public init() {\n  }\n\n"+
			"  public func bar();\n"+
			"}",
		render(t, c.Tokens()))
}

func TestConstructor(t *testing.T) {
	t.Parallel()

	c := swift.NewConstructor()
	assert.Equal(t, "public init() {\n}", render(t, c.Tokens()))

	c.Throws = true
	assert.Equal(t, "public init() throws {\n}", render(t, c.Tokens()))
}

func TestConstructorArguments(t *testing.T) {
	t.Parallel()

	c := swift.NewConstructor()
	c.Arguments = append(c.Arguments,
		swift.NewArgument(swift.Local("Int"), "a"),
		swift.NewArgument(swift.Local("Bool"), "b"))
	// The argument list wraps after each comma, indented one level.
	assert.Equal(t, "public init(a : Int,\n  b : Bool) {\n}", render(t, c.Tokens()))
}

func TestMethod(t *testing.T) {
	t.Parallel()

	m := swift.NewMethod("foo")
	m.Parameters.Append("T")
	assert.Equal(t, "foo", m.Name())
	assert.Equal(t, "public func foo<T>();", render(t, m.Tokens()))
}

func TestMethodComments(t *testing.T) {
	t.Parallel()

	m := swift.NewMethod("foo")
	m.Parameters.Append("T")
	m.Comments = []string{"Hello World"}
	assert.Equal(t, "/**\n * Hello World\n */\npublic func foo<T>();", render(t, m.Tokens()))
}

func TestMethodThrows(t *testing.T) {
	t.Parallel()

	m := swift.NewMethod("foo")
	m.Parameters.Append("T")
	m.Throws = true
	assert.Equal(t, "public func foo<T>() throws;", render(t, m.Tokens()))
}

func TestMethodReturns(t *testing.T) {
	t.Parallel()

	m := swift.NewMethod("foo")
	m.Parameters.Append("T")
	m.Returns = swift.Local("Int")
	assert.Equal(t, "public func foo<T>() -> Int;", render(t, m.Tokens()))
}

func TestMethodVoidReturnOmitted(t *testing.T) {
	t.Parallel()

	m := swift.NewMethod("foo")
	m.Returns = swift.Void
	assert.Equal(t, "public func foo();", render(t, m.Tokens()))
}

func TestMethodBody(t *testing.T) {
	t.Parallel()

	m := swift.NewMethod("foo")
	m.Body.Push("return")
	assert.Equal(t, "public func foo() {\n  return\n}", render(t, m.Tokens()))
}

func TestField(t *testing.T) {
	t.Parallel()

	f := swift.NewField(swift.Local("Int"), "foo")
	assert.Equal(t, "foo", f.Var())
	assert.Equal(t, "private let foo : Int", render(t, f.Tokens()))
}

func TestFieldComments(t *testing.T) {
	t.Parallel()

	f := swift.NewField(swift.Local("Int"), "foo")
	f.Comments = []string{"Hello World"}
	assert.Equal(t, "/**\n * Hello World\n */\nprivate let foo : Int", render(t, f.Tokens()))
}

func TestFieldAccessors(t *testing.T) {
	t.Parallel()

	f := swift.NewField(swift.Local("Int"), "foo")
	f.SetMutable(true)
	init := &swift.Tokens{}
	init.Append("300")
	f.SetInitializer(init)
	f.SetGetter(&swift.Tokens{})
	f.SetSetter(&swift.Tokens{})
	assert.Equal(t, "private var foo : Int = 300 {\n  get\n  set\n}", render(t, f.Tokens()))
}

func TestFieldGetterBody(t *testing.T) {
	t.Parallel()

	f := swift.NewField(swift.Local("Int"), "foo")
	f.SetMutable(true)
	getter := &swift.Tokens{}
	getter.Push("return bar")
	f.SetGetter(getter)
	assert.Equal(t, "private var foo : Int {\n  get {\n  return bar\n  }\n}", render(t, f.Tokens()))
}

func TestArgument(t *testing.T) {
	t.Parallel()

	a := swift.NewArgument(swift.Local("Int"), "arg")
	assert.Equal(t, "arg", a.Var())
	assert.Equal(t, "arg : Int", render(t, a.Tokens()))

	init := &swift.Tokens{}
	init.Append("100")
	a.SetInitializer(init)
	assert.Equal(t, "arg : Int = 100", render(t, a.Tokens()))
}

func TestModifiersSortedAndDeduplicated(t *testing.T) {
	t.Parallel()

	m := swift.NewMethod("foo")
	m.Modifiers = []swift.Modifier{swift.Final, swift.Static, swift.Public, swift.Static}
	assert.Equal(t, "public static final func foo();", render(t, m.Tokens()))
}
