/*
File    : lox/environment/environment.go
*/

// Package environment implements the lexically scoped binding chain lox
// programs execute against: a tree of scopes, each pointing at its
// enclosing parent, shared by reference between the evaluator and any
// closures that captured a node.
package environment

import "github.com/loxlang/lox/object"

// Environment is a single lexical scope: a binding map plus an optional
// parent. The root (global) environment has a nil Parent.
type Environment struct {
	values map[string]object.Value
	Parent *Environment
}

// New creates a fresh environment. Pass nil for a root/global scope, or an
// existing *Environment to create a child scope nested inside it.
func New(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]object.Value),
		Parent: parent,
	}
}

// Define binds name to value in this scope only, shadowing (without
// mutating) any binding of the same name in an enclosing scope. This is
// the only way a new binding is introduced.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get looks up name by walking this scope and then its ancestors in turn.
// The returned bool is false if no scope in the chain defines name.
func (e *Environment) Get(name string) (object.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign updates an existing binding of name in the nearest ancestor scope
// that defines it (including this scope itself). It returns false without
// modifying anything if no such binding exists — declaration via Define is
// the only way to introduce a new name.
func (e *Environment) Assign(name string, value object.Value) bool {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return true
		}
	}
	return false
}
