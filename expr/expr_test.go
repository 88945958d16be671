package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coosharp/custom-macro-collection/bitops"
	"github.com/coosharp/custom-macro-collection/reg"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	ev := NewEvaluator(nil)

	table := [](struct {
		expr  string
		value uint64
	}){
		{"max_val(3, 5)", 5},
		{"min_val(3, 5)", 3},
		{"abs_val(-7)", 7},
		{"abs_val(0)", 0},
		{"make_u32(0x01, 0x02, 0x03, 0x04)", 0x01020304},
		{"make_u16(0xbe, 0xef)", 0xbeef},
		{"round_up(13, 4)", 16},
		{"round_down(13, 4)", 12},
		{"round_up(13, 4) + 1", 17},
		{"round_up_2(13)", 14},
		{"round_up_4(13)", 16},
		{"round_down_2(13)", 12},
		{"round_down_4(15)", 12},
		{"bits_to_bytes(9)", 2},
		{"bytes_to_bits(3)", 24},
		{"bit(4)", 0x10},
		{"set_bit(0, 31)", 0x80000000},
		{"clr_bit(0xff, 0)", 0xfe},
		{"tog_bit(tog_bit(0x5a, 3), 3)", 0x5a},
		{"bit_is_set(0x10, 4)", 1},
		{"bit_is_clr(0x10, 4)", 0},
		{"byte0(0x01020304)", 0x04},
		{"byte1(0x01020304)", 0x03},
		{"byte2(0x01020304)", 0x02},
		{"byte3(0x01020304)", 0x01},
		{"mask_byte(0x1122334455667788, 7)", 0x11},
		{"swap_u16(0x1234)", 0x3412},
		{"swap_u32(0x01020304)", 0x04030201},
		{"htonl(htonl(0xcafebabe))", 0xcafebabe},
		{"ntohs(htons(0xcafe))", 0xcafe},
		{"BITS_PER_BYTE * 4", 32},
		{"-1", 0xffffffffffffffff},
		{"None", 0},
	}

	for _, entry := range table {
		value, err := ev.Eval(entry.expr)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.value, value, entry.expr)
	}

	value, err := ev.Eval("htonl(0x01020304)")
	assert.NoError(err)
	assert.Equal(uint64(bitops.Htonl(0x01020304)), value)
}

func TestEval_Errors(t *testing.T) {
	assert := assert.New(t)

	ev := NewEvaluator(nil)

	table := [](struct {
		expr string
		err  error
	}){
		{"make_u16(0x100, 0)", ErrArgRange},
		{"byte0(-1)", ErrArgNegative},
		{"byte0('a')", ErrArgType},
		{"byte0(1, 2)", ErrArgCount},
		{"byte0(x=1)", ErrArgCount},
		{"round_up(13, 3)", bitops.ErrAlignment(0)},
		{"round_up(13, 0)", bitops.ErrAlignZero},
		{"set_bit(0, 64)", ErrArgRange},
	}

	for _, entry := range table {
		_, err := ev.Eval(entry.expr)
		assert.ErrorIs(err, entry.err, entry.expr)
	}

	for _, expr := range []string{"'text'", "1.5", "[1]"} {
		_, err := ev.Eval(expr)
		var ep ErrParseExpression
		assert.True(errors.As(err, &ep), expr)
		assert.Equal(ErrParseExpression(expr), ep)
	}

	for _, expr := range []string{"read32(0)", "write8(0, 1)", "set16_bits(0, 1)", "clr32_bits(0, 1)"} {
		_, err := ev.Eval(expr)
		assert.ErrorIs(err, ErrBusMissing, expr)
	}

	_, err := ev.Eval("read32(0)")
	assert.ErrorContains(err, "read32")

	_, err = ev.Eval("1 +")
	assert.Error(err)
}

func TestEval_Predefine(t *testing.T) {
	assert := assert.New(t)

	ev := &Evaluator{}
	ev.Predefine("UART0_BASE", "0x40001000")
	ev.Predefine("BIG", "0xffffffffffffffff")
	ev.Predefine("NEG", "-16")
	ev.Predefine("NAME", "uart0")
	ev.Predefine("NEG", "-32")

	value, err := ev.Eval("UART0_BASE + 4")
	assert.NoError(err)
	assert.Equal(uint64(0x40001004), value)

	value, err = ev.Eval("BIG")
	assert.NoError(err)
	assert.Equal(uint64(0xffffffffffffffff), value)

	value, err = ev.Eval("abs_val(NEG)")
	assert.NoError(err)
	assert.Equal(uint64(32), value)

	_, err = ev.Eval("NAME")
	assert.Error(err)

	_, ok := ev.Globals()["NAME"]
	assert.False(ok)
}

func TestEval_Bus(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mem := reg.NewMemory(0x40001000, 8)
	ev := NewEvaluator(mem)
	ev.Verbose = true
	ev.Predefine("CTRL", "0x40001004")

	for _, expr := range []string{
		"write32(CTRL, 0x00ff00ff)",
		"set32_bits(CTRL, 0xff000000)",
		"clr32_bits(CTRL, 0x000000ff)",
		"write16(0x40001002, 0xbeef)",
		"write8(0x40001000, 0x5a)",
		"set8_bits(0x40001001, 0x81)",
		"clr16_bits(0x40001002, 0x00ef)",
	} {
		_, err := ev.Eval(expr)
		require.NoError(err, expr)
	}

	value, err := ev.Eval("read32(CTRL)")
	assert.NoError(err)
	assert.Equal(uint64(0xffff0000), value)

	value, err = ev.Eval("read16(0x40001002)")
	assert.NoError(err)
	assert.Equal(uint64(0xbe00), value)

	value, err = ev.Eval("read8(0x40001000) | read8(0x40001001) << 8")
	assert.NoError(err)
	assert.Equal(uint64(0x815a), value)

	_, err = ev.Eval("read32(0x40001002)")
	assert.ErrorIs(err, reg.ErrUnaligned{})

	_, err = ev.Eval("write8(0x40001000, 0x100)")
	assert.ErrorIs(err, ErrArgRange)

	_, err = ev.Eval("read32(0x40001008)")
	assert.ErrorIs(err, reg.ErrOutOfRange{})
}
