package evaluator

import (
	"fmt"
	"github.com/sean-d/vih/object"
)

/*
builtins is the table of host-provided functions available to every program,
consulted by evalIdentifier only after a full miss in the environment chain,
so a `let` binding of the same name shadows the builtin instead of colliding
with it.

Besides the happy path, each builtin validates its own argument count and
types and returns a *object.Error rather than panicking - the same
first-class error discipline Eval itself follows.
*/
var builtins = map[string]*object.Builtin{
	"len": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("Builtin function len expected one argument")
			}

			switch arg := args[0].(type) {
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			case *object.List:
				return &object.Integer{Value: int64(len(arg.Elements))}
			default:
				return newError("Builtin function len expected type String or List")
			}
		},
	},

	"first": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("Builtin function first expected one argument")
			}
			if args[0].Type() != object.LIST_OBJ {
				return newError("Builtin function first expected type List")
			}

			list := args[0].(*object.List)
			if len(list.Elements) == 0 {
				return newError("List is empty")
			}

			return list.Elements[0]
		},
	},

	"last": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("Builtin function last expected one argument")
			}
			if args[0].Type() != object.LIST_OBJ {
				return newError("Builtin function last expected type List")
			}

			list := args[0].(*object.List)
			length := len(list.Elements)
			if length == 0 {
				return newError("List is empty")
			}

			return list.Elements[length-1]
		},
	},

	"rest": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("Builtin function rest expected one argument")
			}
			if args[0].Type() != object.LIST_OBJ {
				return newError("Builtin function rest expected type List")
			}

			list := args[0].(*object.List)
			length := len(list.Elements)
			if length <= 1 {
				return &object.List{Elements: []object.Object{}}
			}

			newElements := make([]object.Object, length-1)
			copy(newElements, list.Elements[1:length])
			return &object.List{Elements: newElements}
		},
	},

	"push": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 2 {
				return newError("Builtin function push expected two arguments")
			}
			if args[1].Type() != object.LIST_OBJ {
				return newError("Builtin function push expected first argument of type List")
			}

			list := args[1].(*object.List)
			list.Elements = append(list.Elements, args[0])

			return list
		},
	},

	"puts": {
		Fn: func(args ...object.Object) object.Object {
			for _, arg := range args {
				fmt.Println(arg.Inspect())
			}

			return NULL
		},
	},
}
