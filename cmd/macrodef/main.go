// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// macrodef evaluates bit operation expressions and reads or writes
// memory-mapped registers.
//
// Usage:
//
//	macrodef [-c regs.yaml] [-v] <command> [arguments]
//
// Commands:
//
//	eval EXPR...            evaluate expressions (round_up(13, 4), UART0_DATA + 4, ...)
//	peek ADDR               read a register
//	poke ADDR VALUE         write a register
//	set ADDR MASK           set bits in a register
//	clear ADDR MASK         clear bits in a register
//	defines                 list the equates available to expressions
//
// ADDR, VALUE and MASK are expressions; with a register map loaded, ADDR
// may also be a register name, which supplies the access width.
package main

import (
	"context"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("macrodef: ")

	os.Exit(run(context.Background(), os.Args))
}

// run executes the command line and returns the exit code.
func run(ctx context.Context, args []string) int {
	if err := createApp().Run(ctx, args); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}
