package object

import (
	"bytes"
	"fmt"
	"github.com/sean-d/vih/ast"
	"strings"
)

/*
ObjectType represents every value we encounter when evaluating source code as an Object, an interface of our design.
Every value will be wrapped inside a struct, which fulfills this Object interface.
*/
type ObjectType string
type BuiltinFunction func(args ...Object) Object

const (
	NULL_OBJ         = "NULL"
	ERROR_OBJ        = "ERROR"
	BUILTIN_OBJ      = "BUILTIN"
	INTEGER_OBJ      = "INTEGER"
	BOOLEAN_OBJ      = "BOOLEAN"
	STRING_OBJ       = "STRING"
	RETURN_VALUE_OBJ = "RETURN_VALUE"
	FUNCTION_OBJ     = "FUNCTION"
	LIST_OBJ         = "LIST"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

/*
Integer

Whenever we encounter an integer literal in the source code we first turn it into an ast.IntegerLiteral and then,
when evaluating that AST node, we turn it into an object.Integer, saving the value inside our struct and passing around a reference to this struct.

In order for object.Integer to fulfill the object.Object interface, it still needs a Type() method that returns its ObjectType (INTEGER_OBJ)
*/
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Boolean wraps a native bool. Only the TRUE and FALSE singletons declared in
// the evaluator package are ever constructed; `==`/`!=` on booleans is
// identity comparison against those singletons.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

/*
I know i know....nulls...
*/
type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

// ReturnValue wraps the value passed to a `return` statement. It is never
// produced any other way, and it is always unwrapped at the nearest
// enclosing function call boundary.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error carries a formatted runtime error message. It propagates by normal
// return value, never by panic.
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

// Function is a closure: the parameter list and body borrow from the
// immutable AST, and Env is the environment captured at the function
// literal's creation.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := []string{}
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("func")
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}

// Builtin wraps a host-provided function injected into the builtins table.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function" }

/*
List

Lists map directly onto Go's slices. A List has interior mutability: `push`
appends to Elements in place, and two bindings that alias the same *List see
each other's mutations.
*/
type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out bytes.Buffer

	elements := []string{}
	for _, e := range l.Elements {
		elements = append(elements, e.Inspect())
	}

	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")

	return out.String()
}
