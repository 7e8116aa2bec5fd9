package config

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Script is an ordered sequence of operations run against a fresh list.
type Script struct {
	// Name identifies the script in logs, usually its file path.
	Name string
	Ops  []*Op
}

// OpKind names a list operation.
type OpKind string

const (
	OpInsert OpKind = "insert"
	OpGet    OpKind = "get"
	OpSet    OpKind = "set"
	OpRemove OpKind = "remove"
	OpCount  OpKind = "count"
	OpClear  OpKind = "clear"
	OpPrint  OpKind = "print"
)

// Kinds lists every supported operation in a stable order.
var Kinds = []OpKind{OpInsert, OpGet, OpSet, OpRemove, OpCount, OpClear, OpPrint}

// ParseOpKind validates a raw operation name.
func ParseOpKind(s string) (OpKind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// Op is a single step of a script. Nil argument pointers mean the argument
// was omitted; an explicit null is also treated as omitted.
type Op struct {
	Kind OpKind
	// Source is a human-readable location such as "file.hcl:3,1-12".
	Source string

	Value  *cty.Value
	Index  *cty.Value
	Count  *cty.Value
	Expect *cty.Value

	// ExpectError names the error kind the operation must fail with.
	ExpectError string
}

// Error kinds accepted by ExpectError. Scripts hold values, never nodes, so
// a node type contract failure cannot occur there and has no kind.
const (
	ErrKindInvalidArgument = "invalid_argument"
	ErrKindIndexOutOfRange = "index_out_of_range"
)

// Validate checks that the error kind, if any, is known.
func (o *Op) Validate() error {
	switch o.ExpectError {
	case "", ErrKindInvalidArgument, ErrKindIndexOutOfRange:
		return nil
	default:
		return fmt.Errorf("%s: unknown expect_error %q", o.Source, o.ExpectError)
	}
}
