package gomap

import (
	"reflect"
	"strings"
)

// field is an exported struct field as it is encoded.
type field struct {
	name      string
	index     []int
	omitEmpty bool
}

// parseTag reads a `don:"name,omitempty"` tag. A name of "-" skips the
// field.
func parseTag(tag string) (name string, omitEmpty, skip bool) {
	if tag == "-" {
		return "", false, true
	}
	name, rest, _ := strings.Cut(tag, ",")
	for opt := range strings.SplitSeq(rest, ",") {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// structFields lists the encoded fields of ty in declaration order.
// Untagged embedded structs contribute their fields in place.
func structFields(ty reflect.Type, index []int) []field {
	var res []field
	for i := range ty.NumField() {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		name, omitEmpty, skip := parseTag(f.Tag.Get("don"))
		if skip {
			continue
		}
		idx := append(append([]int(nil), index...), i)
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				res = append(res, structFields(ft, idx)...)
				continue
			}
		}
		if name == "" {
			name = f.Name
		}
		res = append(res, field{name: name, index: idx, omitEmpty: omitEmpty})
	}
	return res
}

// fieldByIndex is reflect.Value.FieldByIndex stopping at nil embedded
// pointers.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}
