//go:build !unix

package main

import (
	"errors"
	"io"

	"github.com/coosharp/custom-macro-collection/reg"
)

const DEFAULT_DEVICE = ""

var errNoMapping = errors.New(f("register mapping is not supported on this system"))

func openBus(device string, base, size uint32, verbose bool) (bus reg.Bus, closer io.Closer, err error) {
	err = errNoMapping
	return
}
