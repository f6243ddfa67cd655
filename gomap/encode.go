package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/don-format/don/debug"
	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/parse"
	"github.com/signadot/don-format/don/token"
)

// Entry is a key value pair of an Ordered map.
type Entry struct {
	Key   string
	Value any
}

// Ordered is a map which encodes its entries in slice order.
type Ordered []Entry

var (
	nodeType     = reflect.TypeFor[*ir.Node]()
	valueType    = reflect.TypeFor[ir.Value]()
	orderedType  = reflect.TypeFor[Ordered]()
	textType     = reflect.TypeFor[encoding.TextMarshaler]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

// ident identifies a pointer, map or slice by the memory it refers to.
type ident struct {
	ty reflect.Type
	p  uintptr
}

// Encode returns the DON text for v.
func Encode(v any) string {
	val, ids := deref(reflect.ValueOf(v))
	if !val.IsValid() {
		return "null"
	}
	if s, ok := leaf(val); ok {
		return token.EncodeString(s)
	}
	switch val.Type() {
	case nodeType:
		return val.Interface().(*ir.Node).String()
	case valueType:
		return encodeValue(val.Interface().(ir.Value))
	}
	if !isComposite(val.Kind()) {
		return "null"
	}
	ids = append(ids, identOf(val)...)
	res := toNode(val, ids).String()
	if debug.Encode() {
		debug.Logf("gomap encode %T: %s", v, res)
	}
	return res
}

// ToNode returns the node v encodes as. ok is false if v encodes as a
// leaf or as null.
func ToNode(v any) (node *ir.Node, ok bool) {
	val, ids := deref(reflect.ValueOf(v))
	if !val.IsValid() {
		return nil, false
	}
	if _, isLeaf := leaf(val); isLeaf {
		return nil, false
	}
	switch val.Type() {
	case nodeType:
		return val.Interface().(*ir.Node), true
	case valueType:
		iv := val.Interface().(ir.Value)
		return iv.Node, iv.Node != nil
	}
	if !isComposite(val.Kind()) {
		return nil, false
	}
	ids = append(ids, identOf(val)...)
	return toNode(val, ids), true
}

func encodeValue(v ir.Value) string {
	if v.Node != nil {
		return v.Node.String()
	}
	return token.EncodeString(v.String)
}

// toNode builds the node of the composite val, whose ancestors,
// val included, are identified by stack.
func toNode(val reflect.Value, stack []ident) *ir.Node {
	res := ir.New()
	add := func(key string, child reflect.Value) {
		if v, ok := childValue(child, stack); ok {
			res.Set(key, v)
		}
	}
	switch val.Kind() {
	case reflect.Map:
		keys := make([]string, 0, val.Len())
		byKey := make(map[string]reflect.Value, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			k := keyString(iter.Key())
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		sortKeys(keys)
		for _, k := range keys {
			add(k, byKey[k])
		}
	case reflect.Slice, reflect.Array:
		if val.Type() == orderedType {
			for _, e := range val.Interface().(Ordered) {
				add(e.Key, reflect.ValueOf(e.Value))
			}
			break
		}
		for i := range val.Len() {
			add(strconv.Itoa(i), val.Index(i))
		}
	case reflect.Struct:
		for _, f := range structFields(val.Type(), nil) {
			fv, ok := fieldByIndex(val, f.index)
			if !ok || (f.omitEmpty && fv.IsZero()) {
				continue
			}
			add(f.name, fv)
		}
	}
	return res
}

// childValue converts a child of a composite value. ok is false when the
// child should be left out: it refers back to an ancestor or has no DON
// form.
func childValue(child reflect.Value, stack []ident) (ir.Value, bool) {
	val, ids := deref(child)
	if !val.IsValid() {
		return ir.FromString("null"), true
	}
	if s, ok := leaf(val); ok {
		return ir.FromString(s), true
	}
	switch val.Type() {
	case nodeType:
		return reparse(val.Interface().(*ir.Node).String()), true
	case valueType:
		iv := val.Interface().(ir.Value)
		if iv.Node == nil {
			return iv, true
		}
		return reparse(iv.Node.String()), true
	}
	if !isComposite(val.Kind()) {
		return ir.Value{}, false
	}
	ids = append(ids, identOf(val)...)
	for _, id := range ids {
		if slices.Contains(stack, id) {
			return ir.Value{}, false
		}
	}
	return reparse(toNode(val, append(slices.Clip(stack), ids...)).String()), true
}

// reparse reads back the text of a nested composite, so nested values
// take the same shape as they would when reading the text of the whole.
func reparse(s string) ir.Value {
	n, _ := parse.ParseString(s)
	return ir.FromNode(n)
}

// deref follows interfaces and pointers, returning the value reached and
// the identities of the pointers passed. The result is invalid for nil.
// Pointers to text marshalers are not followed.
func deref(val reflect.Value) (reflect.Value, []ident) {
	var ids []ident
	for val.IsValid() {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				return reflect.Value{}, ids
			}
			val = val.Elem()
			continue
		case reflect.Pointer:
			if val.IsNil() {
				return reflect.Value{}, ids
			}
			if val.Type() == nodeType || val.Type().Implements(textType) {
				return val, ids
			}
			ids = append(ids, ident{ty: val.Type(), p: val.Pointer()})
			val = val.Elem()
			continue
		case reflect.Map, reflect.Slice:
			if val.IsNil() {
				return reflect.Value{}, ids
			}
		}
		return val, ids
	}
	return val, ids
}

func identOf(val reflect.Value) []ident {
	switch val.Kind() {
	case reflect.Map:
		return []ident{{ty: val.Type(), p: val.Pointer()}}
	case reflect.Slice:
		if val.Len() == 0 {
			return nil
		}
		return []ident{{ty: val.Type(), p: val.Pointer()}}
	}
	return nil
}

// leaf returns the string form of val if val encodes as a leaf.
func leaf(val reflect.Value) (string, bool) {
	if val.Type().Implements(textType) {
		if val.Kind() == reflect.Pointer && val.IsNil() {
			return "null", true
		}
		text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return fmt.Sprint(val.Interface()), true
		}
		return string(text), true
	}
	if val.Kind() == reflect.Pointer {
		return "", false
	}
	if isPrimitive(val.Kind()) && val.Type().Implements(stringerType) {
		return val.Interface().(fmt.Stringer).String(), true
	}
	switch val.Kind() {
	case reflect.String:
		return val.String(), true
	case reflect.Bool:
		return strconv.FormatBool(val.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(val.Uint(), 10), true
	case reflect.Float32:
		return formatFloat(val.Float(), 32), true
	case reflect.Float64:
		return formatFloat(val.Float(), 64), true
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(val.Complex()), true
	}
	return "", false
}

func isComposite(k reflect.Kind) bool {
	switch k {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

func isPrimitive(k reflect.Kind) bool {
	switch k {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct,
		reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan,
		reflect.UnsafePointer, reflect.Invalid:
		return false
	}
	return true
}

// formatFloat writes f the way number to string conversion does in
// JavaScript: plain decimals from 1e-6 up to 1e21, exponents otherwise.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	s := strconv.FormatFloat(f, 'e', -1, bits)
	mant, exp, _ := strings.Cut(s, "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

func keyString(k reflect.Value) string {
	k, _ = deref(k)
	if !k.IsValid() {
		return "null"
	}
	if s, ok := leaf(k); ok {
		return s
	}
	return fmt.Sprint(k.Interface())
}

// sortKeys orders index like keys numerically ahead of the other keys,
// which are sorted.
func sortKeys(keys []string) {
	slices.SortFunc(keys, func(a, b string) int {
		ai, aok := arrayIndex(a)
		bi, bok := arrayIndex(b)
		switch {
		case aok && bok:
			return cmpUint(ai, bi)
		case aok:
			return -1
		case bok:
			return 1
		}
		return strings.Compare(a, b)
	})
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// arrayIndex reports whether s is the canonical decimal form of an
// integer in [0, 2^32-2].
func arrayIndex(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == math.MaxUint32 || strconv.FormatUint(n, 10) != s {
		return 0, false
	}
	return n, true
}

// Leaf returns the leaf string v encodes as, "null" for nil. ok is false
// for composite values.
func Leaf(v any) (s string, ok bool) {
	val, _ := deref(reflect.ValueOf(v))
	if !val.IsValid() {
		return "null", true
	}
	return leaf(val)
}
