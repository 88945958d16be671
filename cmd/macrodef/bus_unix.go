//go:build unix

package main

import (
	"io"

	"github.com/coosharp/custom-macro-collection/reg"
)

const DEFAULT_DEVICE = reg.DEFAULT_DEVICE

func openBus(device string, base, size uint32, verbose bool) (bus reg.Bus, closer io.Closer, err error) {
	mp, err := reg.OpenMapped(device, base, size)
	if err != nil {
		return
	}
	mp.Verbose = verbose

	bus = mp
	closer = mp
	return
}
