package sql

// Function is a SQL builtin function.
type Function interface {
	// Call invokes the function with the given arguments.
	Call(args ...Expression) (Expression, error)
	isFunction()
}

// Function0 is a function with 0 arguments.
type Function0 func() Expression

// Function1 is a function with 1 argument.
type Function1 func(e Expression) Expression

// Function2 is a function with 2 arguments.
type Function2 func(e1, e2 Expression) Expression

// Function3 is a function with 3 arguments.
type Function3 func(e1, e2, e3 Expression) Expression

// FunctionN is a function with variable number of arguments. This function
// is expected to return ErrInvalidArgumentNumber if the arity does not
// match, since the check has to be done in the implementation.
type FunctionN func(args ...Expression) (Expression, error)

// Call implements the Function interface.
func (fn Function0) Call(args ...Expression) (Expression, error) {
	if len(args) != 0 {
		return nil, ErrInvalidArgumentNumber.New(0, len(args))
	}

	return fn(), nil
}

// Call implements the Function interface.
func (fn Function1) Call(args ...Expression) (Expression, error) {
	if len(args) != 1 {
		return nil, ErrInvalidArgumentNumber.New(1, len(args))
	}

	return fn(args[0]), nil
}

// Call implements the Function interface.
func (fn Function2) Call(args ...Expression) (Expression, error) {
	if len(args) != 2 {
		return nil, ErrInvalidArgumentNumber.New(2, len(args))
	}

	return fn(args[0], args[1]), nil
}

// Call implements the Function interface.
func (fn Function3) Call(args ...Expression) (Expression, error) {
	if len(args) != 3 {
		return nil, ErrInvalidArgumentNumber.New(3, len(args))
	}

	return fn(args[0], args[1], args[2]), nil
}

// Call implements the Function interface.
func (fn FunctionN) Call(args ...Expression) (Expression, error) {
	return fn(args...)
}

func (Function0) isFunction() {}
func (Function1) isFunction() {}
func (Function2) isFunction() {}
func (Function3) isFunction() {}
func (FunctionN) isFunction() {}

// Functions is a map of functions indexed by their name.
type Functions map[string]Function

// FunctionRegistry is used to register functions. It is used both for builtin
// and user-defined functions.
type FunctionRegistry map[string]Function

// NewFunctionRegistry creates a new FunctionRegistry.
func NewFunctionRegistry() FunctionRegistry {
	return make(FunctionRegistry)
}

// RegisterFunction registers a function with the given name.
func (r FunctionRegistry) RegisterFunction(name string, f Function) {
	r[name] = f
}

// RegisterFunctions registers a map of functions.
func (r FunctionRegistry) RegisterFunctions(funcs Functions) {
	for name, f := range funcs {
		r[name] = f
	}
}

// Function returns a function with the given name.
func (r FunctionRegistry) Function(name string) (Function, error) {
	if len(r) == 0 {
		return nil, ErrFunctionNotFound.New(name)
	}

	if fn, ok := r[name]; ok {
		return fn, nil
	}

	return nil, ErrFunctionNotFound.New(name)
}
