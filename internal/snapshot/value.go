/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// NotAvailable is the canonical "value unavailable" marker.
const NotAvailable = "N/A"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindNA
	KindInt
	KindFloat
	KindString
	KindBool
	KindDuration
)

var kindNames = [...]string{
	KindNil:      "nil",
	KindNA:       "n/a",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindBool:     "bool",
	KindDuration: "duration",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a tagged variant holding one observed attribute.
// The zero Value is Nil.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func Nil() Value { return Value{} }
func NA() Value { return Value{kind: KindNA} }
func Int(v int64) Value { return Value{kind: KindInt, i: v} }
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }
func String(v string) Value { return Value{kind: KindString, s: v} }
func Duration(d time.Duration) Value { return Value{kind: KindDuration, i: int64(d)} }

func Bool(v bool) Value {
	if v {
		return Value{kind: KindBool, i: 1}
	}
	return Value{kind: KindBool}
}

// ValueOf wraps a Go value. The string "N/A" becomes NA; unsupported
// types are rendered through fmt and stored as strings.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Nil()
	case Value:
		return x
	case string:
		if x == NotAvailable {
			return NA()
		}
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return ValueOf(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		if x > math.MaxInt64 {
			return Float(float64(x))
		}
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case time.Duration:
		return Duration(x)
	default:
		return String(fmt.Sprint(x))
	}
}

func (v Value) Kind() Kind { return v.kind }

// IsNA reports whether v is the "unavailable" sentinel.
func (v Value) IsNA() bool { return v.kind == KindNA }

func (v Value) IsNil() bool { return v.kind == KindNil }

// Int64 returns the integer payload. Floats are truncated toward zero.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt, KindDuration:
		return v.i, true
	case KindFloat:
		// 2^63 is exact as a float64; anything at or past it wraps.
		if math.IsNaN(v.f) || v.f >= 1<<63 || v.f < -(1<<63) {
			return 0, false
		}
		return int64(v.f), true
	}
	return 0, false
}

// Float64 returns the numeric payload as a float.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Str returns the string payload.
func (v Value) Str() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}

// AsDuration returns the duration payload. Plain numbers are taken as seconds.
func (v Value) AsDuration() (time.Duration, bool) {
	switch v.kind {
	case KindDuration:
		return time.Duration(v.i), true
	case KindInt:
		return time.Duration(v.i) * time.Second, true
	case KindFloat:
		return time.Duration(v.f * float64(time.Second)), true
	}
	return 0, false
}

// Interface unwraps v into a plain Go value. NA yields "N/A".
func (v Value) Interface() any {
	switch v.kind {
	case KindNA:
		return NotAvailable
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.i != 0
	case KindDuration:
		return time.Duration(v.i)
	}
	return nil
}

// Repr returns the machine-readable form used by Snapshot.String.
func (v Value) Repr() string {
	switch v.kind {
	case KindNA:
		return strconv.Quote(NotAvailable)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return strconv.Quote(v.s)
	case KindBool:
		return strconv.FormatBool(v.i != 0)
	case KindDuration:
		return time.Duration(v.i).String()
	}
	return "nil"
}

// String is the display form: like Repr but strings are unquoted.
func (v Value) String() string {
	switch v.kind {
	case KindNA:
		return NotAvailable
	case KindString:
		return v.s
	}
	return v.Repr()
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if f == math.Trunc(f) && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// UnmarshalJSON decodes numbers, strings, booleans and null. The string
// "N/A" decodes to NA.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Nil()
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ValueOf(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unsupported value %s: %w", data, err)
	}
	if i, err := n.Int64(); err == nil {
		*v = Int(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	*v = Float(f)
	return nil
}

// MarshalJSON writes NA as "N/A" and durations as seconds.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindDuration:
		return json.Marshal(time.Duration(v.i).Seconds())
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return json.Marshal(NotAvailable)
		}
	}
	return json.Marshal(v.Interface())
}
