/*
File    : lox/builtin/builtin.go
*/

// Package builtin installs the host functions spec.md §6.3 exposes to
// running programs into a global environment.
package builtin

import (
	"time"

	"github.com/loxlang/lox/environment"
	"github.com/loxlang/lox/object"
)

// Install defines every builtin function in globals.
func Install(globals *environment.Environment) {
	for _, b := range all {
		globals.Define(b.Name, b)
	}
}

var all = []*object.BuiltinFunction{
	{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []object.Value) (object.Value, error) {
			return object.Number{Value: float64(time.Now().Unix())}, nil
		},
	},
}
