package model

import (
	"fmt"
	"time"
)

// ValueKind cell value kind
type ValueKind int

const (
	KindMissing ValueKind = iota
	KindString
	KindNumber
	KindDate
)

// Value one scalar cell value; the missing kind is distinct from an empty string
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Date time.Time
}

// MissingValue explicit missing marker
func MissingValue() Value {
	return Value{Kind: KindMissing}
}

// StringValue wraps a string cell
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue wraps a numeric cell
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// DateValue wraps a date cell, truncated to date precision
func DateValue(t time.Time) Value {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Value{Kind: KindDate, Date: d}
}

// IsMissing reports whether the value is the missing marker
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// String renders the value for logs and plain output
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return fmt.Sprintf("%g", v.Num)
	case KindDate:
		return v.Date.Format("2006-01-02")
	default:
		return ""
	}
}
