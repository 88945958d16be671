package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log"

	"github.com/urfave/cli/v3"

	"github.com/coosharp/custom-macro-collection/bitops"
	"github.com/coosharp/custom-macro-collection/expr"
	"github.com/coosharp/custom-macro-collection/internal"
	"github.com/coosharp/custom-macro-collection/reg"
	"github.com/coosharp/custom-macro-collection/regmap"
	"github.com/coosharp/custom-macro-collection/translate"
)

var f = translate.From

func createApp() *cli.Command {
	return &cli.Command{
		Name:  "macrodef",
		Usage: "bit operation calculator and register peek/poke tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "register map (.yaml, .yml or .json)",
			},
			&cli.StringFlag{
				Name:    "device",
				Aliases: []string{"d"},
				Usage:   "device or file to map registers from",
				Value:   DEFAULT_DEVICE,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every evaluation and register access",
			},
		},
		Commands: []*cli.Command{
			createEvalCommand(),
			createPeekCommand(),
			createWriteCommand("poke", "write a register", func(r *reg.Register, v uint32) uint32 { r.Write(v); return v }),
			createWriteCommand("set", "set bits in a register", (*reg.Register).SetBits),
			createWriteCommand("clear", "clear bits in a register", (*reg.Register).ClearBits),
			createDefinesCommand(),
		},
	}
}

func createWidthFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "width",
		Aliases: []string{"w"},
		Usage:   "access width when ADDR is not a named register (8, 16 or 32)",
		Value:   "32",
	}
}

// session holds what a command needs: the register map, if any, and an
// evaluator primed with its equates.
type session struct {
	verbose bool
	device  string
	regs    *regmap.Map
	ev      *expr.Evaluator
	out     io.Writer
}

func newSession(cmd *cli.Command) (ss *session, err error) {
	ss = &session{
		verbose: cmd.Bool("verbose"),
		device:  cmd.String("device"),
		out:     cmd.Root().Writer,
	}

	if path := cmd.String("config"); len(path) != 0 {
		ss.regs, err = regmap.Load(path)
		if err != nil {
			return
		}
	}

	ss.ev = expr.NewEvaluator(nil)
	ss.ev.Verbose = ss.verbose
	if ss.regs != nil {
		ss.ev.PredefineAll(ss.regs.Defines())
	}

	return
}

// defines returns every equate, sorted by name.
func (ss *session) defines() iter.Seq2[string, string] {
	seq := bitops.Defines()
	if ss.regs != nil {
		seq = internal.Concat2(seq, ss.regs.Defines())
	}
	return internal.SortedByKey(seq)
}

// resolve turns a register name or address expression into a location.
func (ss *session) resolve(text string, width string) (addr uint32, w reg.Width, err error) {
	if ss.regs != nil {
		if ent, ok := ss.regs.Lookup(text); ok {
			addr = ss.regs.Addr(ent)
			w = ent.RegWidth()
			return
		}
	}

	w, err = reg.ParseWidth(width)
	if err != nil {
		return
	}

	value, err := ss.ev.Eval(text)
	if err != nil {
		return
	}
	if value > 0xffffffff {
		err = fmt.Errorf("%v: %w", text, expr.ErrArgRange)
		return
	}
	addr = uint32(value)
	return
}

// register maps just the one register and returns a handle for it.
func (ss *session) register(addr uint32, w reg.Width) (r *reg.Register, closer io.Closer, err error) {
	bus, closer, err := openBus(ss.device, addr, w.Bytes(), ss.verbose)
	if err != nil {
		return
	}

	r, err = reg.NewRegister(bus, addr, w)
	if err != nil {
		closer.Close()
		closer = nil
		return
	}
	r.Verbose = ss.verbose
	return
}

func (ss *session) print(r *reg.Register, value uint32) {
	digits := int(r.Width().Bytes()) * 2
	fmt.Fprintf(ss.out, "%#08x: 0x%0*x\n", r.Addr(), digits, value)
}

func createEvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "evaluate expressions",
		ArgsUsage: "EXPR...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return cli.Exit(f("eval: expression missing"), 2)
			}

			ss, err := newSession(cmd)
			if err != nil {
				return err
			}

			for _, text := range cmd.Args().Slice() {
				value, err := ss.ev.Eval(text)
				if err != nil {
					return err
				}
				fmt.Fprintf(ss.out, "%#x\t%d\n", value, value)
			}
			return nil
		},
	}
}

func createPeekCommand() *cli.Command {
	return &cli.Command{
		Name:      "peek",
		Usage:     "read a register",
		ArgsUsage: "ADDR",
		Flags:     []cli.Flag{createWidthFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return cli.Exit(f("peek: expected ADDR"), 2)
			}

			ss, err := newSession(cmd)
			if err != nil {
				return err
			}

			addr, w, err := ss.resolve(cmd.Args().Get(0), cmd.String("width"))
			if err != nil {
				return err
			}

			r, closer, err := ss.register(addr, w)
			if err != nil {
				return err
			}
			defer closer.Close()

			ss.print(r, r.Read())
			return nil
		},
	}
}

func createWriteCommand(name, usage string, op func(r *reg.Register, value uint32) uint32) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "ADDR VALUE",
		Flags:     []cli.Flag{createWidthFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return cli.Exit(f("%v: expected ADDR and VALUE", name), 2)
			}

			ss, err := newSession(cmd)
			if err != nil {
				return err
			}

			addr, w, err := ss.resolve(cmd.Args().Get(0), cmd.String("width"))
			if err != nil {
				return err
			}

			value, err := ss.ev.Eval(cmd.Args().Get(1))
			if err != nil {
				return err
			}
			if value > uint64(w.Mask()) {
				return fmt.Errorf("%v: %w", cmd.Args().Get(1), expr.ErrArgRange)
			}

			r, closer, err := ss.register(addr, w)
			if err != nil {
				return err
			}
			defer closer.Close()

			result := op(r, uint32(value))
			if ss.verbose {
				log.Printf("%v %v %#x -> %#x", name, r, value, result)
			}
			ss.print(r, r.Read())
			return nil
		},
	}
}

func createDefinesCommand() *cli.Command {
	return &cli.Command{
		Name:  "defines",
		Usage: "list the equates available to expressions",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ss, err := newSession(cmd)
			if err != nil {
				return err
			}

			for name, value := range ss.defines() {
				fmt.Fprintf(ss.out, "%v=%v\n", name, value)
			}
			return nil
		},
	}
}
