/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package snapshot

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestValueJSON(t *testing.T) {
	tests := []struct {
		input    string
		wantKind Kind
		wantRepr string
	}{
		{`42`, KindInt, "42"},
		{`-3`, KindInt, "-3"},
		{`12.5`, KindFloat, "12.5"},
		{`2.0`, KindFloat, "2.0"},
		{`"N/A"`, KindNA, `"N/A"`},
		{`"python3"`, KindString, `"python3"`},
		{`true`, KindBool, "true"},
		{`null`, KindNil, "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if v.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", v.Kind(), tt.wantKind)
			}
			if v.Repr() != tt.wantRepr {
				t.Errorf("Repr() = %s, want %s", v.Repr(), tt.wantRepr)
			}
		})
	}
}

func TestValueJSONRejectsObjects(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"a":1}`), &v); err == nil {
		t.Error("expected error for object input")
	}
}

func TestValueMissingFieldIsNil(t *testing.T) {
	var rec struct {
		Util Value `json:"util"`
	}
	if err := json.Unmarshal([]byte(`{}`), &rec); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !rec.Util.IsNil() {
		t.Errorf("missing field kind = %v, want nil", rec.Util.Kind())
	}
}

func TestValueConversions(t *testing.T) {
	if n, ok := Float(45.9).Int64(); !ok || n != 45 {
		t.Errorf("Float(45.9).Int64() = %d, %v", n, ok)
	}
	if _, ok := NA().Float64(); ok {
		t.Error("NA().Float64() should not be ok")
	}
	if d, ok := Int(90).AsDuration(); !ok || d != 90*time.Second {
		t.Errorf("Int(90).AsDuration() = %v, %v", d, ok)
	}
	if s := String("x").String(); s != "x" {
		t.Errorf("String() = %q, want unquoted", s)
	}
	if s := NA().String(); s != NotAvailable {
		t.Errorf("NA().String() = %q", s)
	}
	if !ValueOf("N/A").IsNA() {
		t.Error(`ValueOf("N/A") should be NA`)
	}
}

func TestValueOfLargeUnsigned(t *testing.T) {
	if v := ValueOf(uint64(7)); v.Kind() != KindInt {
		t.Errorf("ValueOf(uint64(7)) kind = %v, want int", v.Kind())
	}

	v := ValueOf(uint64(math.MaxUint64))
	if v.Kind() != KindFloat {
		t.Fatalf("ValueOf(MaxUint64) kind = %v, want float", v.Kind())
	}
	if f, _ := v.Float64(); f <= 0 {
		t.Errorf("ValueOf(MaxUint64) = %v, want positive", f)
	}
	if n, ok := v.Int64(); ok {
		t.Errorf("Int64() = %d, want not ok", n)
	}
	if _, ok := Float(-1e19).Int64(); ok {
		t.Error("Float(-1e19).Int64() should not be ok")
	}
	if n, ok := Float(-(1 << 63)).Int64(); !ok || n != math.MinInt64 {
		t.Errorf("Float(-2^63).Int64() = %d, %v", n, ok)
	}
}
