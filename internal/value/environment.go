package value

// Environment is the evaluator's runtime scope: a flat table of global
// bindings shared by the whole program, plus a single-character keyed
// argument frame scoped to the lambda invocation currently being
// evaluated. Unlike a lexical parent-chain environment, there is no
// chain here — globals and the argument frame are the whole of it.
type Environment struct {
	Globals map[string]Value
	Args    map[byte]Value
}

// NewEnvironment builds an environment with the two bindings every
// program starts with: true and false, encoded as Integer(1) and
// Integer(0). They are never removed once seeded.
func NewEnvironment() *Environment {
	return &Environment{
		Globals: map[string]Value{
			"true":  IntegerFromInt64(1),
			"false": IntegerFromInt64(0),
		},
		Args: make(map[byte]Value),
	}
}

// Lookup resolves a variable name: first against globals, then,
// if the name is a single character, against the current argument
// frame.
func (e *Environment) Lookup(name string) (Value, bool) {
	if v, ok := e.Globals[name]; ok {
		return v, true
	}
	if len(name) == 1 {
		if v, ok := e.Args[name[0]]; ok {
			return v, true
		}
	}

	return nil, false
}

// Define binds name to val in globals, overwriting any prior binding.
func (e *Environment) Define(name string, val Value) {
	e.Globals[name] = val
}

// WithArgs produces the argument frame for one lambda invocation: a
// clone of the caller's frame (e's current Args) with bindings for
// chars[i] set to vals[i], each prior entry for that character removed
// before the fresh one is inserted. Globals are shared, not cloned —
// only Args is ever copy-on-write.
//
// Cloning rather than starting from an empty frame means parameter
// characters the callee never rebinds remain visible if they were
// already bound in the caller's frame; this mirrors the reference
// evaluator's args.clone() step and is required for nested lambdas to
// see enclosing single-character bindings without a closure
// environment.
func (e *Environment) WithArgs(chars []byte, vals []Value) *Environment {
	next := make(map[byte]Value, len(e.Args)+len(chars))
	for k, v := range e.Args {
		next[k] = v
	}
	for i, c := range chars {
		delete(next, c)
		next[c] = vals[i]
	}

	return &Environment{Globals: e.Globals, Args: next}
}
