// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that custom components built using reflection must
// implement. See MakePart.
//
type Updater interface {
	Update(c *Circuit)
}

// pinField describes a struct field mapped to a pin or bus.
type pinField struct {
	index int
	name  string
	input bool
	bits  int // -1 for a single pin
}

func pinFields(typ reflect.Type) []pinField {
	var fs []pinField
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		pf := pinField{index: i, name: strings.ToLower(f.Name), bits: -1}
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			panic(errors.Errorf("malformed tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if len(tv) == 2 && tv[1] != "" {
			pf.name = tv[1]
		}
		switch tv[0] {
		case "in":
			pf.input = true
		case "out":
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		switch ft := f.Type; {
		case ft.Kind() == reflect.Array && ft.Elem().Kind() == reflect.Int:
			pf.bits = ft.Len()
		case ft.Kind() == reflect.Int:
		default:
			panic(errors.Errorf("unsupported type %q for field %q in %q", ft.Kind(), f.Name, typ.Name()))
		}
		fs = append(fs, pf)
	}
	return fs
}

// MakePart wraps an Updater into a custom part. Every mount of the part
// allocates a new zero value of the Updater's type, so parts can keep state
// in unexported fields.
//
// Input/output pins are identified by field tags: `hw:"in"` or `hw:"out"`. By
// default, the pin name is the field name in lowercase. A specific pin name
// can be forced by adding it in the tag: `hw:"in,pin_name"`. Pin fields must
// be of type int, buses arrays of int; they receive the pin numbers assigned
// when the part is mounted.
//
// MakePart panics if t is not a struct or pointer to struct or if a tagged
// field is invalid.
//
func MakePart(t Updater) *PartSpec {
	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}

	fs := pinFields(typ)
	sp := &PartSpec{Name: typ.Name()}
	for _, f := range fs {
		pins := []string{f.name}
		if f.bits >= 0 {
			pins = pins[:0]
			for i := 0; i < f.bits; i++ {
				pins = append(pins, BusPinName(f.name, i))
			}
		}
		if f.input {
			sp.Inputs = append(sp.Inputs, pins...)
		} else {
			sp.Outputs = append(sp.Outputs, pins...)
		}
	}
	sp.Mount = func(s *Socket) []Component {
		v := reflect.New(typ)
		e := v.Elem()
		for _, f := range fs {
			fv := e.Field(f.index)
			if f.bits < 0 {
				fv.SetInt(int64(s.Pin(f.name)))
				continue
			}
			for i, p := range s.Bus(f.name, f.bits) {
				fv.Index(i).SetInt(int64(p))
			}
		}
		return []Component{v.Interface().(Updater).Update}
	}
	return sp
}
