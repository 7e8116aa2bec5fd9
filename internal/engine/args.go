package engine

import (
	"fmt"

	"github.com/vk/sllist"
	"github.com/vk/sllist/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// accepted lists the arguments each operation understands.
var accepted = map[config.OpKind]map[string]bool{
	config.OpInsert: {"value": true, "index": true},
	config.OpGet:    {"index": true, "expect": true},
	config.OpSet:    {"index": true, "value": true},
	config.OpRemove: {"index": true, "count": true},
	config.OpCount:  {"expect": true},
	config.OpClear:  {},
	config.OpPrint:  {},
}

// checkArgs rejects arguments an operation does not take.
func checkArgs(op *config.Op) error {
	allowed := accepted[op.Kind]
	given := map[string]*cty.Value{
		"value":  op.Value,
		"index":  op.Index,
		"count":  op.Count,
		"expect": op.Expect,
	}
	for _, name := range []string{"value", "index", "count", "expect"} {
		if given[name] != nil && !allowed[name] {
			return fmt.Errorf("%w: %s does not take %s", sllist.ErrInvalidArgument, op.Kind, name)
		}
	}
	return nil
}

func missing(name string) error {
	return fmt.Errorf("%w: missing required argument %s", sllist.ErrInvalidArgument, name)
}

// toInt converts a script value to an int. Only whole numbers are accepted;
// strings and fractions are rejected rather than coerced.
func toInt(v cty.Value, name string) (int, error) {
	if !v.Type().Equals(cty.Number) {
		return 0, fmt.Errorf("%w: %s must be a number, got %s", sllist.ErrInvalidArgument, name, v.Type().FriendlyName())
	}
	var i int
	if err := gocty.FromCtyValue(v, &i); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", sllist.ErrInvalidArgument, name, err)
	}
	return i, nil
}
