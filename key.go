package tinylfu

import (
	"encoding/binary"
	"hash/maphash"
	"io"
	"math"
	"reflect"
)

// KeyWriter is implemented by keys that define their own canonical byte form.
// Keys that compare equal must write equal bytes.
type KeyWriter interface {
	WriteKey(w io.Writer)
}

var keyWriterType = reflect.TypeFor[KeyWriter]()

// writeKey feeds the canonical representation of key into w.
//
// Strings, numbers, bools and any struct, array or interface built from them
// are written as bytes and hash identically under any instance sharing the
// same builder seed. Pointers and channels compare by identity, so they are
// reduced with maphash under the instance's own seed and are only stable
// within one instance.
func writeKey[K comparable](w io.Writer, seed maphash.Seed, key K) {
	switch k := any(key).(type) {
	case string:
		_, _ = io.WriteString(w, k)
		return
	case KeyWriter:
		k.WriteKey(w)
		return
	case int:
		writeUint64(w, uint64(k))
		return
	case int64:
		writeUint64(w, uint64(k))
		return
	case uint64:
		writeUint64(w, k)
		return
	}
	writeValue(w, seed, reflect.ValueOf(key), false)
}

// nested values are length- or tag-prefixed so that adjacent fields cannot
// run into each other; a top-level string stays raw to match HashString.
func writeValue(w io.Writer, seed maphash.Seed, v reflect.Value, nested bool) {
	switch v.Kind() {
	case reflect.Invalid:
		writeByte(w, 0)
	case reflect.String:
		if nested {
			writeUint64(w, uint64(v.Len()))
		}
		_, _ = io.WriteString(w, v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint64(w, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint64(w, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(w, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(w, real(c))
		writeFloat(w, imag(c))
	case reflect.Bool:
		if v.Bool() {
			writeByte(w, 1)
		} else {
			writeByte(w, 0)
		}
	case reflect.Struct:
		if nested && v.CanInterface() && v.Type().Implements(keyWriterType) {
			v.Interface().(KeyWriter).WriteKey(w)
			return
		}
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			// == ignores blank fields
			if t.Field(i).Name == "_" {
				continue
			}
			writeValue(w, seed, v.Field(i), true)
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			writeValue(w, seed, v.Index(i), true)
		}
	case reflect.Interface:
		if v.IsNil() {
			writeByte(w, 0)
			return
		}
		writeByte(w, 1)
		writeValue(w, seed, v.Elem(), true)
	default:
		// pointers, channels and unsafe pointers: identity only
		writeUint64(w, maphash.Comparable(seed, v.Pointer()))
	}
}

func writeByte(w io.Writer, b byte) {
	buf := [1]byte{b}
	_, _ = w.Write(buf[:])
}

func writeUint64(w io.Writer, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = w.Write(buf[:])
}

// -0 == +0, so both are written as +0.
func writeFloat(w io.Writer, f float64) {
	if f == 0 {
		f = 0
	}
	writeUint64(w, math.Float64bits(f))
}
