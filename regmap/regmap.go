// Package regmap loads named register maps from YAML or JSON.
//
// A map gives each register of a peripheral a name, an offset from the
// peripheral base, a width, and optionally named bit fields:
//
//	name: uart0
//	base: 0x40001000
//	registers:
//	  - name: DATA
//	    offset: 0x00
//	    width: 32
//	  - name: STATUS
//	    offset: 0x04
//	    width: 8
//	    fields:
//	      - {name: RXNE, bit: 0}
//	      - {name: BAUD, bit: 4, width: 3}
//
// Numbers may be written in hex, as YAML integers or as strings.
package regmap

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/coosharp/custom-macro-collection/reg"
)

// Format of a register map document.
type Format string

const (
	FORMAT_YAML = Format("yaml")
	FORMAT_JSON = Format("json")
)

// Field is a named group of bits within a register.
type Field struct {
	Name  string `koanf:"name"`
	Bit   uint   `koanf:"bit"`   // Lowest bit of the field.
	Width uint   `koanf:"width"` // Bits in the field; 0 means 1.
}

// Bits returns the field width, defaulting to a single bit.
func (fd Field) Bits() uint {
	if fd.Width == 0 {
		return 1
	}
	return fd.Width
}

// Mask of the field within its register.
func (fd Field) Mask() uint32 {
	return uint32((uint64(1)<<fd.Bits())-1) << fd.Bit
}

// Entry describes one register.
type Entry struct {
	Name   string  `koanf:"name"`
	Offset uint32  `koanf:"offset"`
	Width  int     `koanf:"width"` // 8, 16 or 32; 0 means 32.
	Fields []Field `koanf:"fields"`
}

// RegWidth returns the access width of the register.
func (ent Entry) RegWidth() reg.Width {
	if ent.Width == 0 {
		return reg.WIDTH_32
	}
	return reg.Width(ent.Width)
}

// Map is a peripheral register map.
type Map struct {
	Name      string  `koanf:"name"`
	Base      uint32  `koanf:"base"`
	Registers []Entry `koanf:"registers"`

	index map[string]int
}

// Load reads a register map, choosing the format from the file extension.
func Load(path string) (m *Map, err error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FORMAT_YAML
	case ".json":
		format = FORMAT_JSON
	default:
		err = fmt.Errorf("%w: %v", ErrFormat, path)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrLoad, err)
		return
	}

	return LoadBytes(data, format)
}

// LoadBytes parses a register map document.
func LoadBytes(data []byte, format Format) (m *Map, err error) {
	var parser koanf.Parser
	switch format {
	case FORMAT_YAML:
		parser = yaml.Parser()
	case FORMAT_JSON:
		parser = json.Parser()
	default:
		err = fmt.Errorf("%w: %v", ErrFormat, format)
		return
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err = k.Load(rawbytes.Provider(data), parser); err != nil {
			err = fmt.Errorf("%w: %w", ErrParse, err)
			return
		}
	}

	m = &Map{}
	if err = k.UnmarshalWithConf("", m, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		m = nil
		err = fmt.Errorf("%w: %w", ErrParse, err)
		return
	}

	if err = m.validate(); err != nil {
		m = nil
	}
	return
}

func (m *Map) validate() (err error) {
	m.index = make(map[string]int, len(m.Registers))
	for n, ent := range m.Registers {
		if len(ent.Name) == 0 {
			err = ErrEntry{Name: fmt.Sprintf("#%d", n), Err: ErrName}
			return
		}
		if _, dup := m.index[ent.Name]; dup {
			err = ErrEntry{Name: ent.Name, Err: ErrDuplicate}
			return
		}
		width := ent.RegWidth()
		if !width.Valid() {
			err = ErrEntry{Name: ent.Name, Err: reg.ErrWidth(ent.Width)}
			return
		}
		end := uint64(m.Base) + uint64(ent.Offset) + uint64(width.Bytes())
		if end > 1<<32 || ent.Offset&(width.Bytes()-1) != 0 {
			err = ErrEntry{Name: ent.Name, Err: ErrRange}
			return
		}
		fields := map[string]bool{}
		for _, fd := range ent.Fields {
			if len(fd.Name) == 0 {
				err = ErrEntry{Name: ent.Name, Err: ErrName}
				return
			}
			if fields[fd.Name] {
				err = ErrEntry{Name: ent.Name + "." + fd.Name, Err: ErrDuplicate}
				return
			}
			fields[fd.Name] = true
			if fd.Bit+fd.Bits() > uint(width) {
				err = ErrEntry{Name: ent.Name + "." + fd.Name, Err: ErrField}
				return
			}
		}
		m.index[ent.Name] = n
	}

	return
}

// Addr returns the absolute address of a register.
func (m *Map) Addr(ent Entry) uint32 {
	return m.Base + ent.Offset
}

// Lookup finds a register by name.
func (m *Map) Lookup(name string) (ent Entry, ok bool) {
	n, ok := m.index[name]
	if ok {
		ent = m.Registers[n]
	}
	return
}

// Bind creates a register handle for every entry of the map on bus.
func (m *Map) Bind(bus reg.Bus) (regs map[string]*reg.Register, err error) {
	regs = make(map[string]*reg.Register, len(m.Registers))
	for _, ent := range m.Registers {
		var r *reg.Register
		r, err = reg.NewRegister(bus, m.Addr(ent), ent.RegWidth())
		if err != nil {
			regs = nil
			err = ErrEntry{Name: ent.Name, Err: err}
			return
		}
		regs[ent.Name] = r
	}

	return
}

func (m *Map) prefix() string {
	if len(m.Name) == 0 {
		return ""
	}
	return strings.ToUpper(m.Name) + "_"
}

// Defines yields the register addresses, and each field mask and shift,
// as equates named PREFIX_REG, PREFIX_REG_FIELD and PREFIX_REG_FIELD_SHIFT.
func (m *Map) Defines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		prefix := m.prefix()
		for _, ent := range m.Registers {
			name := prefix + strings.ToUpper(ent.Name)
			if !yield(name, fmt.Sprintf("%#x", m.Addr(ent))) {
				return
			}
			for _, fd := range ent.Fields {
				field := name + "_" + strings.ToUpper(fd.Name)
				if !yield(field, fmt.Sprintf("%#x", fd.Mask())) {
					return
				}
				if !yield(field+"_SHIFT", fmt.Sprintf("%d", fd.Bit)) {
					return
				}
			}
		}
	}
}
