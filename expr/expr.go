// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package expr evaluates integer expressions over the bit operation catalog.
//
// Expressions are Starlark, with the catalog available as builtins named
// after the C macros in lower case (round_up, make_u32, htonl, ...), and
// integer equates available as globals. The register accessors
// read8/16/32, write8/16/32, set8/16/32_bits and clr8/16/32_bits act on the
// attached Bus, and fail with ErrBusMissing when there is none.
package expr

import (
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/coosharp/custom-macro-collection/bitops"
	"github.com/coosharp/custom-macro-collection/reg"
)

// Evaluator evaluates expressions against a set of equates.
type Evaluator struct {
	Verbose bool    // If set, logs each evaluation.
	Bus     reg.Bus // Optional bus for the register builtins.

	predefine map[string]string
}

// NewEvaluator creates an evaluator with the bitops equates predefined.
func NewEvaluator(bus reg.Bus) (ev *Evaluator) {
	ev = &Evaluator{
		Bus: bus,
	}
	ev.PredefineAll(bitops.Defines())

	return
}

// Predefine defines a new equate or redefines an existing one.
func (ev *Evaluator) Predefine(equ string, value string) {
	if ev.predefine == nil {
		ev.predefine = map[string]string{equ: value}
	} else {
		ev.predefine[equ] = value
	}
}

// PredefineAll defines every equate of a sequence.
func (ev *Evaluator) PredefineAll(defines iter.Seq2[string, string]) {
	for equ, value := range defines {
		ev.Predefine(equ, value)
	}
}

// valueOf parses an equate as a signed or unsigned 64-bit integer.
func valueOf(text string) (value starlark.Int, ok bool) {
	if v, err := strconv.ParseInt(text, 0, 64); err == nil {
		return starlark.MakeInt64(v), true
	}
	if v, err := strconv.ParseUint(text, 0, 64); err == nil {
		return starlark.MakeUint64(v), true
	}
	return
}

// Globals returns the predeclared names an expression can use.
func (ev *Evaluator) Globals() (pred starlark.StringDict) {
	pred = starlark.StringDict{}

	for name, fn := range catalog {
		pred[name] = starlark.NewBuiltin(name, fn)
	}

	for name, fn := range busBuiltins(ev.Bus) {
		pred[name] = starlark.NewBuiltin(name, fn)
	}

	for key, str := range ev.predefine {
		value, ok := valueOf(str)
		if !ok {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = value
	}

	return
}

// Eval evaluates one expression. Negative results are returned in two's
// complement, booleans are 0 or 1, and None is 0.
func (ev *Evaluator) Eval(expr string) (value uint64, err error) {
	thread := &starlark.Thread{
		Name: "expr",
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("expr: %v", msg)
		},
	}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"

	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", prog, ev.Globals())
	if err != nil {
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		if v, ok := rc.Int64(); ok {
			value = uint64(v)
		} else if v, ok := rc.Uint64(); ok {
			value = v
		} else {
			err = ErrParseExpression(expr)
		}
	case starlark.Bool:
		if rc {
			value = 1
		}
	case starlark.NoneType:
		// Register writes have no result.
	default:
		err = ErrParseExpression(expr)
	}

	if ev.Verbose {
		log.Printf("expr: %v = %#x (%v)", expr, value, err)
	}

	return
}
