package expr

import (
	"fmt"
	"math"

	"go.starlark.net/starlark"

	"github.com/coosharp/custom-macro-collection/bitops"
	"github.com/coosharp/custom-macro-collection/reg"
)

type builtinFunc = func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// unsigned unpacks exactly len(limits) non-negative integer arguments,
// each no larger than its limit.
func unsigned(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, limits ...uint64) (vals []uint64, err error) {
	if len(kwargs) != 0 || len(args) != len(limits) {
		err = fmt.Errorf("%v: %w", fn.Name(), ErrArgCount)
		return
	}

	vals = make([]uint64, len(args))
	for n, arg := range args {
		i, ok := arg.(starlark.Int)
		if !ok {
			err = ErrArgument{Func: fn.Name(), Index: n, Err: ErrArgType}
			return
		}
		if i.Sign() < 0 {
			err = ErrArgument{Func: fn.Name(), Index: n, Err: ErrArgNegative}
			return
		}
		u, ok := i.Uint64()
		if !ok || u > limits[n] {
			err = ErrArgument{Func: fn.Name(), Index: n, Err: ErrArgRange}
			return
		}
		vals[n] = u
	}

	return
}

// signed unpacks exactly count integer arguments that fit an int64.
func signed(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, count int) (vals []int64, err error) {
	if len(kwargs) != 0 || len(args) != count {
		err = fmt.Errorf("%v: %w", fn.Name(), ErrArgCount)
		return
	}

	vals = make([]int64, len(args))
	for n, arg := range args {
		i, ok := arg.(starlark.Int)
		if !ok {
			err = ErrArgument{Func: fn.Name(), Index: n, Err: ErrArgType}
			return
		}
		v, ok := i.Int64()
		if !ok {
			err = ErrArgument{Func: fn.Name(), Index: n, Err: ErrArgRange}
			return
		}
		vals[n] = v
	}

	return
}

const (
	u8     = math.MaxUint8
	u16    = math.MaxUint16
	u32    = math.MaxUint32
	u64    = math.MaxUint64
	maxBit = 63 // Highest bit number of an expression value.
)

// unary wraps a one argument unsigned function.
func unary(limit uint64, op func(uint64) uint64) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		v, err := unsigned(fn, args, kwargs, limit)
		if err != nil {
			return nil, err
		}
		return starlark.MakeUint64(op(v[0])), nil
	}
}

// binary wraps a two argument unsigned function.
func binary(limitA, limitB uint64, op func(a, b uint64) (uint64, error)) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		v, err := unsigned(fn, args, kwargs, limitA, limitB)
		if err != nil {
			return nil, err
		}
		r, err := op(v[0], v[1])
		if err != nil {
			return nil, err
		}
		return starlark.MakeUint64(r), nil
	}
}

// predicate wraps a value/bit-number test.
func predicate(op func(v uint64, n uint) bool) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		v, err := unsigned(fn, args, kwargs, u64, maxBit)
		if err != nil {
			return nil, err
		}
		return starlark.Bool(op(v[0], uint(v[1]))), nil
	}
}

func bitFunc(op func(reg *uint64, n uint) uint64) func(a, b uint64) (uint64, error) {
	return func(a, b uint64) (uint64, error) {
		return op(&a, uint(b)), nil
	}
}

func roundFunc(op func(x, align uint32) uint32) func(a, b uint64) (uint64, error) {
	return func(a, b uint64) (r uint64, err error) {
		align := uint32(b)
		if err = bitops.CheckAlign(align); err != nil {
			return
		}
		r = uint64(op(uint32(a), align))
		return
	}
}

func signedPair(op func(x, y int64) int64) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		v, err := signed(fn, args, kwargs, 2)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt64(op(v[0], v[1])), nil
	}
}

func absVal(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	v, err := signed(fn, args, kwargs, 1)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt64(bitops.Abs(v[0])), nil
}

func makeU16(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	v, err := unsigned(fn, args, kwargs, u8, u8)
	if err != nil {
		return nil, err
	}
	return starlark.MakeUint64(uint64(bitops.MakeU16(uint8(v[0]), uint8(v[1])))), nil
}

func makeU32(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	v, err := unsigned(fn, args, kwargs, u8, u8, u8, u8)
	if err != nil {
		return nil, err
	}
	return starlark.MakeUint64(uint64(bitops.MakeU32(uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3])))), nil
}

// catalog is the set of builtins that need no bus.
var catalog = map[string]builtinFunc{
	"max_val": signedPair(bitops.Max[int64]),
	"min_val": signedPair(bitops.Min[int64]),
	"abs_val": absVal,

	"bit":        unary(maxBit, func(n uint64) uint64 { return bitops.Bit[uint64](uint(n)) }),
	"set_bit":    binary(u64, maxBit, bitFunc(bitops.SetBit[uint64])),
	"clr_bit":    binary(u64, maxBit, bitFunc(bitops.ClrBit[uint64])),
	"tog_bit":    binary(u64, maxBit, bitFunc(bitops.TogBit[uint64])),
	"bit_is_set": predicate(bitops.BitIsSet[uint64]),
	"bit_is_clr": predicate(bitops.BitIsClr[uint64]),

	"byte0":     unary(u32, func(x uint64) uint64 { return uint64(bitops.Byte0(uint32(x))) }),
	"byte1":     unary(u32, func(x uint64) uint64 { return uint64(bitops.Byte1(uint32(x))) }),
	"byte2":     unary(u32, func(x uint64) uint64 { return uint64(bitops.Byte2(uint32(x))) }),
	"byte3":     unary(u32, func(x uint64) uint64 { return uint64(bitops.Byte3(uint32(x))) }),
	"mask_byte": binary(u64, 7, func(x, n uint64) (uint64, error) { return uint64(bitops.MaskByte(x, uint(n))), nil }),
	"make_u16":  makeU16,
	"make_u32":  makeU32,

	"swap_u16": unary(u16, func(x uint64) uint64 { return uint64(bitops.SwapU16(uint16(x))) }),
	"swap_u32": unary(u32, func(x uint64) uint64 { return uint64(bitops.SwapU32(uint32(x))) }),
	"htons":    unary(u16, func(x uint64) uint64 { return uint64(bitops.Htons(uint16(x))) }),
	"ntohs":    unary(u16, func(x uint64) uint64 { return uint64(bitops.Ntohs(uint16(x))) }),
	"htonl":    unary(u32, func(x uint64) uint64 { return uint64(bitops.Htonl(uint32(x))) }),
	"ntohl":    unary(u32, func(x uint64) uint64 { return uint64(bitops.Ntohl(uint32(x))) }),

	"bits_to_bytes": unary(u64-7, bitops.BitsToBytes[uint64]),
	"bytes_to_bits": unary(u64>>3, bitops.BytesToBits[uint64]),
	"round_down":    binary(u32, u32, roundFunc(bitops.RoundDown[uint32])),
	"round_up":      binary(u32, u32, roundFunc(bitops.RoundUp[uint32])),
	"round_down_2":  unary(u32, func(x uint64) uint64 { return uint64(bitops.RoundDown2(uint32(x))) }),
	"round_down_4":  unary(u32, func(x uint64) uint64 { return uint64(bitops.RoundDown4(uint32(x))) }),
	"round_up_2":    unary(u32, func(x uint64) uint64 { return uint64(bitops.RoundUp2(uint32(x))) }),
	"round_up_4":    unary(u32, func(x uint64) uint64 { return uint64(bitops.RoundUp4(uint32(x))) }),
}

// busBuiltins returns the register access builtins bound to a bus. With a
// nil bus they fail with ErrBusMissing.
func busBuiltins(bus reg.Bus) map[string]builtinFunc {
	read := func(w reg.Width) builtinFunc {
		return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if bus == nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), ErrBusMissing)
			}
			v, err := unsigned(fn, args, kwargs, u32)
			if err != nil {
				return nil, err
			}
			r, err := reg.NewRegister(bus, uint32(v[0]), w)
			if err != nil {
				return nil, err
			}
			return starlark.MakeUint64(uint64(r.Read())), nil
		}
	}

	// update applies op(register, value), with value no wider than w.
	update := func(w reg.Width, op func(r *reg.Register, value uint32)) builtinFunc {
		return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if bus == nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), ErrBusMissing)
			}
			v, err := unsigned(fn, args, kwargs, u32, uint64(w.Mask()))
			if err != nil {
				return nil, err
			}
			r, err := reg.NewRegister(bus, uint32(v[0]), w)
			if err != nil {
				return nil, err
			}
			op(r, uint32(v[1]))
			return starlark.None, nil
		}
	}

	write := func(r *reg.Register, value uint32) { r.Write(value) }
	set := func(r *reg.Register, mask uint32) { r.SetBits(mask) }
	clr := func(r *reg.Register, mask uint32) { r.ClearBits(mask) }

	fns := map[string]builtinFunc{}
	for _, w := range []reg.Width{reg.WIDTH_8, reg.WIDTH_16, reg.WIDTH_32} {
		suffix := w.String()
		fns["read"+suffix] = read(w)
		fns["write"+suffix] = update(w, write)
		fns["set"+suffix+"_bits"] = update(w, set)
		fns["clr"+suffix+"_bits"] = update(w, clr)
	}

	return fns
}
