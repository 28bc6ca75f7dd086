package evaluator

import (
	"fmt"
	"github.com/sean-d/vih/ast"
	"github.com/sean-d/vih/object"
)

var (
	NULL  = &object.Null{}
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

/*
Eval will take an ast.Node as input and return an object.Object. Remember that every node we defined in the ast package
fulfills the ast.Node interface and can thus be passed to Eval. This allows us to use Eval recursively and call itself
while evaluating a part of the AST. Each AST node needs a different form of evaluation and Eval is the place where we
decide what these forms look like. As an example, let’s say that we pass an *ast.Program node to Eval. What Eval should
do then is to evaluate each of *ast.Program.Statements by calling itself with a single statement. The return value of
the outer call to Eval is the return value of the last call.
*/
func Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	// Statements
	case *ast.Program:
		return evalProgram(node, env)

	case *ast.BlockStatement:
		return evalBlockStatement(node, env)

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)

	case *ast.ReturnStatement:
		if node.ReturnValue == nil {
			return &object.ReturnValue{Value: NULL}
		}
		val := Eval(node.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.LetStatement:
		val := Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Value, val)

	case *ast.ForStatement:
		return evalForStatement(node, env)

	// Expressions
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)

	case *ast.ListLiteral:
		elements := evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &object.List{Elements: elements}

	case *ast.PrefixExpression:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}

		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}

		return evalInfixExpression(node.Operator, left, right)

	case *ast.IfExpression:
		return evalIfExpression(node, env)

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.FunctionLiteral:
		params := node.Parameters
		body := node.Body
		return &object.Function{Parameters: params, Env: env, Body: body}

	case *ast.CallExpression:
		function := Eval(node.Callee, env)
		if isError(function) {
			return function
		}

		args := evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}

		return applyFunction(function, args)

	case *ast.IndexExpression:
		return evalIndexExpression(node, env)
	}

	return nil
}

// evalProgram checks if the last evaluation result is such an object.ReturnValue and if so, we stop the evaluation and
// return the unwrapped value. That’s important. We don’t return an object.ReturnValue, but only the value it’s wrapping,
// which is what the user expects to be returned.
func evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object

	for _, statement := range program.Statements {
		result = Eval(statement, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

/*
evalBlockStatement

Here we explicitly don’t unwrap the return value and only check the Type() of each evaluation result.

If it’s object.RETURN_VALUE_OBJ we simply return the *object.ReturnValue, without unwrapping its .Value,
so it stops execution in a possible outer block statement and bubbles up to evalProgram, where it finally gets unwrapped.
*/
func evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object

	for _, statement := range block.Statements {
		result = Eval(statement, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

// evalForStatement evaluates the three-clause C-style loop directly in env:
// InitialValue is evaluated exactly once, binding Counter in the current
// frame, and the body runs in that same frame so a `let` inside it reassigns
// an outer binding rather than shadowing it locally. A `return` inside the
// body propagates straight out.
func evalForStatement(fs *ast.ForStatement, env *object.Environment) object.Object {
	initial := Eval(fs.InitialValue, env)
	if isError(initial) {
		return initial
	}
	env.Set(fs.Counter.Value, initial)

	var result object.Object = NULL

	for {
		condition := Eval(fs.Condition, env)
		if isError(condition) {
			return condition
		}
		if !isTruthy(condition) {
			break
		}

		result = Eval(fs.Body, env)
		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}

		updated := Eval(fs.UpdateRule.Value, env)
		if isError(updated) {
			return updated
		}
		env.Set(fs.UpdateRule.Name.Value, updated)
	}

	return result
}

// nativeBoolToBooleanObject returns a bool obj based on trutiness
func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// evalPrefixExpression returns an Object of what is passed in for evaluation if the operator is supported.
func evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return evalBangOperatorExpression(right)
	case "-":
		return evalMinusPrefixOperatorExpression(right)
	default:
		return newError("unknown operator: %s%s", operator, right.Type())
	}
}

// evalInfixExpression returns an Object of what is passed in for evaluation if the operand is supported.
// String `+` concatenates; strings support no other operator. Every defined
// comparison (integer comparisons, boolean ordering by value, and identity
// `==`/`!=`) yields a canonical BooleanLiteral rather than any int-like encoding.
func evalInfixExpression(operator string, left, right object.Object) object.Object {
	switch {
	case left.Type() == object.INTEGER_OBJ && right.Type() == object.INTEGER_OBJ:
		return evalIntegerInfixExpression(operator, left, right)
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return evalStringInfixExpression(operator, left, right)
	case operator == "==":
		return nativeBoolToBooleanObject(left == right)
	case operator == "!=":
		return nativeBoolToBooleanObject(left != right)
	case left.Type() == object.BOOLEAN_OBJ && right.Type() == object.BOOLEAN_OBJ &&
		(operator == "<" || operator == ">" || operator == "<=" || operator == ">="):
		l, r := left.(*object.Boolean).Value, right.(*object.Boolean).Value
		switch operator {
		case "<":
			return nativeBoolToBooleanObject(!l && r)
		case ">":
			return nativeBoolToBooleanObject(l && !r)
		case "<=":
			return nativeBoolToBooleanObject(!l || r)
		default:
			return nativeBoolToBooleanObject(l || !r)
		}
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s",
			left.Type(), operator, right.Type())
	default:
		return newError("unknown operator: %s %s %s",
			left.Type(), operator, right.Type())
	}
}

// evalBangOperatorExpression determines the behavior of the supplied !
func evalBangOperatorExpression(right object.Object) object.Object {
	switch right {
	case TRUE:
		return FALSE
	case FALSE:
		return TRUE
	case NULL:
		return TRUE
	default:
		return FALSE
	}
}

// evalMinusPrefixOperatorExpression checks if the operand is an integer. If it isn’t, we return an error. But if it is,
// we extract the value of the *object.Integer. Then we allocate a new object to wrap a negated version of this value.
func evalMinusPrefixOperatorExpression(right object.Object) object.Object {
	if right.Type() != object.INTEGER_OBJ {
		return newError("unknown operator: -%s", right.Type())
	}

	value := right.(*object.Integer).Value
	return &object.Integer{Value: -value}
}

// evalIntegerInfixExpression adds, subtracts, multiplies, divides, and compares the values wrapped by *object.Integers.
// Division by zero is a runtime error, not a host panic.
func evalIntegerInfixExpression(operator string, left, right object.Object) object.Object {
	leftVal := left.(*object.Integer).Value
	rightVal := right.(*object.Integer).Value

	switch operator {
	case "+":
		return &object.Integer{Value: leftVal + rightVal}
	case "-":
		return &object.Integer{Value: leftVal - rightVal}
	case "*":
		return &object.Integer{Value: leftVal * rightVal}
	case "/":
		if rightVal == 0 {
			return newError("division by zero")
		}
		return &object.Integer{Value: leftVal / rightVal}
	case "<":
		return nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return nativeBoolToBooleanObject(leftVal > rightVal)
	case "<=":
		return nativeBoolToBooleanObject(leftVal <= rightVal)
	case ">=":
		return nativeBoolToBooleanObject(leftVal >= rightVal)
	case "==":
		return nativeBoolToBooleanObject(leftVal == rightVal)
	case "!=":
		return nativeBoolToBooleanObject(leftVal != rightVal)
	default:
		return newError("unknown operator: %s %s %s",
			left.Type(), operator, right.Type())
	}
}

// evalStringInfixExpression only supports concatenation; comparisons on
// strings aren't part of this language.
func evalStringInfixExpression(operator string, left, right object.Object) object.Object {
	if operator != "+" {
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}

	leftVal := left.(*object.String).Value
	rightVal := right.(*object.String).Value
	return &object.String{Value: leftVal + rightVal}
}

// evalIfExpression determines what should be evaluated.
func evalIfExpression(ie *ast.IfExpression, env *object.Environment) object.Object {
	condition := Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return Eval(ie.Alternative, env)
	} else {
		return NULL
	}
}

// evalIdentifier checks if a value has been associated with the given name in the current environment.
// It will look up built-in functions as a fallback when the given identifier is not bound to a value in the current environment.
// If that’s the case it returns the value, otherwise an error.
func evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}

	if builtin, ok := builtins[node.Value]; ok {
		return builtin
	}

	return newError("identifier not found: " + node.Value)
}

// evalIndexExpression evaluates COLLECTION[INDEX]. Only lists indexed by an
// in-bounds integer are supported; everything else is a typed error.
func evalIndexExpression(node *ast.IndexExpression, env *object.Environment) object.Object {
	collection := Eval(node.Collection, env)
	if isError(collection) {
		return collection
	}

	list, ok := collection.(*object.List)
	if !ok {
		return newError("Exprected collection for indexing, got ObjectType.%s", collection.Type())
	}

	index := Eval(node.Index, env)
	if isError(index) {
		return index
	}

	idx, ok := index.(*object.Integer)
	if !ok {
		return newError("Exprected collection for indexing, got ObjectType.%s", index.Type())
	}

	length := int64(len(list.Elements))
	if idx.Value < 0 || idx.Value >= length {
		return newError("Index %d out of bounds for collection of len %d", idx.Value, length)
	}

	return list.Elements[idx.Value]
}

// isTruthy is the truthiness gatekeeper of truth
func isTruthy(obj object.Object) bool {
	switch obj {
	case NULL:
		return false
	case TRUE:
		return true
	case FALSE:
		return false
	default:
		return true
	}
}

// newError is a useful helper to handle where NULL was otherwise used. It returns...erors
func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}

// isError returns a bool representing if the supplied obj is an object error type
func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}

// evalExpressions iterates over a list of ast.Expressions and evaluate them in the context of the current environment.
// If we encounter an error, we stop the evaluation and return the error. This is also the part where we decided to
// evaluate the arguments from left-to-right.
func evalExpressions(exps []ast.Expression, env *object.Environment) []object.Object {
	var result []object.Object

	for _, e := range exps {
		evaluated := Eval(e, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// applyFunction checks that we really have something callable: either a
// *object.Function (user-defined closure) or a *object.Builtin (host function).
func applyFunction(fn object.Object, args []object.Object) object.Object {
	switch fn := fn.(type) {
	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return newError("function requires %d parameters, got %d", len(fn.Parameters), len(args))
		}

		extendedEnv := extendFunctionEnv(fn, args)
		evaluated := Eval(fn.Body, extendedEnv)
		return unwrapReturnValue(evaluated)

	case *object.Builtin:
		return fn.Fn(args...)

	default:
		return newError("not a function: %s", fn.Type())
	}
}

// extendFunctionEnv creates a new *object.Environment that’s enclosed by the function’s environment.
// In this new, enclosed environment it binds the arguments of the function call to the function’s parameter names.
func extendFunctionEnv(fn *object.Function, args []object.Object) *object.Environment {
	env := object.NewEnclosedEnvironment(fn.Env)

	for paramIdx, param := range fn.Parameters {
		env.Set(param.Value, args[paramIdx])
	}

	return env
}

// unwrapReturnValue returns the return value if what is expected matches or the object itself otherwise
func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}

	return obj
}
