// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// A Connection connects the pin PP of a part to the wire CP of its host chip.
//
type Connection struct {
	PP string
	CP string
}

// BusPinName returns the name of the i-th pin of the given bus.
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// IO expands an input or output pin description and returns individual pin
// names, expanding bus declarations. For example:
//
//	IO("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
// IO panics if the description is malformed.
//
func IO(spec string) []string {
	pins, err := parseIOspec(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

func parseIOspec(spec string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, f := range fields(spec) {
		name, size := f, -1
		if i := strings.IndexRune(f, '['); i >= 0 {
			if !strings.HasSuffix(f, "]") {
				return nil, errors.Errorf("in %q: missing close bracket after %q", spec, f)
			}
			n, err := strconv.Atoi(f[i+1 : len(f)-1])
			if err != nil || n <= 0 {
				return nil, errors.Errorf("in %q: invalid bus size in %q", spec, f)
			}
			name, size = f[:i], n
		}
		if !isIdent(name) {
			return nil, errors.Errorf("in %q: invalid pin name %q", spec, name)
		}
		var names []string
		if size < 0 {
			names = []string{name}
		} else {
			for i := 0; i < size; i++ {
				names = append(names, BusPinName(name, i))
			}
		}
		for _, n := range names {
			if seen[n] {
				return nil, errors.Errorf("in %q: duplicate pin name %q", spec, n)
			}
			seen[n] = true
		}
		out = append(out, names...)
	}
	return out, nil
}

// ParseConnections parses a connection configuration like "partPinX=chipPinY, ...".
//
// Each side of a connection is a pin name, an indexed bus pin "bus[i]" or a
// bus range "bus[i..j]". Ranges on both sides must have the same length and
// are connected pin to pin. A range on the left side can be connected to a
// single chip pin, typically a constant:
//
//	"a[0..3]=in[4..7], b[0..3]=false, sel=mode"
//
func ParseConnections(c string) ([]Connection, error) {
	var conns []Connection
	seen := make(map[string]bool)
	for _, f := range fields(c) {
		i := strings.IndexRune(f, '=')
		if i < 0 {
			return nil, errors.Errorf("in %q: missing '=' in %q", c, f)
		}
		k, v := strings.TrimSpace(f[:i]), strings.TrimSpace(f[i+1:])
		ks, err := expandRange(k)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", c)
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", c)
		}
		switch {
		case len(ks) == len(vs):
		case len(vs) == 1:
			for len(vs) < len(ks) {
				vs = append(vs, vs[0])
			}
		default:
			return nil, errors.Errorf("in %q: pin count mismatch in %q", c, f)
		}
		for i := range ks {
			if seen[ks[i]] {
				return nil, errors.Errorf("in %q: pin %s connected more than once", c, ks[i])
			}
			seen[ks[i]] = true
			conns = append(conns, Connection{ks[i], vs[i]})
		}
	}
	return conns, nil
}

func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		if !isIdent(name) {
			return nil, errors.Errorf("invalid pin name %q", name)
		}
		return []string{name}, nil
	}
	bus := name[:i]
	if !isIdent(bus) {
		return nil, errors.Errorf("invalid bus name %q", bus)
	}
	if !strings.HasSuffix(name, "]") {
		return nil, errors.Errorf("no terminating ] in %q", name)
	}
	n := name[i+1 : len(name)-1]
	i = strings.Index(n, "..")
	if i < 0 {
		idx, err := strconv.Atoi(n)
		if err != nil || idx < 0 {
			return nil, errors.Errorf("invalid bus index in %q", name)
		}
		return []string{BusPinName(bus, idx)}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrapf(err, "bus range start in %q", name)
	}
	end, err := strconv.Atoi(n[i+2:])
	if err != nil {
		return nil, errors.Wrapf(err, "bus range end in %q", name)
	}
	if start < 0 || end < start {
		return nil, errors.Errorf("invalid bus range in %q", name)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

// fields splits a comma separated list and trims spaces around each item.
func fields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fs := strings.Split(s, ",")
	for i := range fs {
		fs[i] = strings.TrimSpace(fs[i])
	}
	return fs
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !(unicode.IsLetter(r) || r == '_' || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}
