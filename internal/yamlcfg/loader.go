// Package yamlcfg provides the YAML implementation of config.Loader.
//
// A YAML script carries the same operations as its HCL counterpart:
//
//	ops:
//	  - op: insert
//	    value: 10
//	  - op: get
//	    index: 0
//	    expect: 10
package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"

	"github.com/vk/sllist/internal/config"
	"github.com/vk/sllist/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML script loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

type yamlScript struct {
	Ops []yamlOp `yaml:"ops"`
}

// yamlOp keeps arguments as raw nodes so an omitted key can be told apart
// from an explicit value.
type yamlOp struct {
	Op          string    `yaml:"op"`
	Value       yaml.Node `yaml:"value"`
	Index       yaml.Node `yaml:"index"`
	Count       yaml.Node `yaml:"count"`
	Expect      yaml.Node `yaml:"expect"`
	ExpectError string    `yaml:"expect_error"`

	line int
}

var opKeys = map[string]bool{
	"op":           true,
	"value":        true,
	"index":        true,
	"count":        true,
	"expect":       true,
	"expect_error": true,
}

// UnmarshalYAML rejects unknown keys itself: node.Decode does not inherit
// the outer decoder's KnownFields setting.
func (o *yamlOp) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !opKeys[key.Value] {
				return fmt.Errorf("line %d: unknown field %q in op", key.Line, key.Value)
			}
		}
	}
	type plain yamlOp
	if err := node.Decode((*plain)(o)); err != nil {
		return err
	}
	o.line = node.Line
	return nil
}

// Parse translates YAML source into a script. The filename is used for
// error messages and as the script name.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Script, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing YAML script.", "file", filename)

	var raw yamlScript
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}

	script := &config.Script{Name: filename, Ops: make([]*config.Op, 0, len(raw.Ops))}
	for i := range raw.Ops {
		op, err := translateOp(&raw.Ops[i], filename)
		if err != nil {
			return nil, fmt.Errorf("error parsing op in file %s: %w", filename, err)
		}
		if err := op.Validate(); err != nil {
			return nil, err
		}
		script.Ops = append(script.Ops, op)
	}

	logger.Debug("YAML script parsed.", "file", filename, "ops", len(script.Ops))
	return script, nil
}

func translateOp(raw *yamlOp, filename string) (*config.Op, error) {
	source := fmt.Sprintf("%s:%d", filename, raw.line)

	kind, err := config.ParseOpKind(raw.Op)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	op := &config.Op{Kind: kind, Source: source, ExpectError: raw.ExpectError}
	fields := []struct {
		name   string
		node   *yaml.Node
		target **cty.Value
	}{
		{"value", &raw.Value, &op.Value},
		{"index", &raw.Index, &op.Index},
		{"count", &raw.Count, &op.Count},
		{"expect", &raw.Expect, &op.Expect},
	}
	for _, f := range fields {
		if f.node.Kind == 0 {
			continue
		}
		var v any
		if err := f.node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: decoding %s: %w", source, f.name, err)
		}
		val, err := toCty(v)
		if err != nil {
			return nil, fmt.Errorf("%s: converting %s: %w", source, f.name, err)
		}
		if val.IsNull() {
			continue
		}
		*f.target = &val
	}
	return op, nil
}

// toCty converts a value produced by the YAML decoder into a cty.Value.
func toCty(v any) (cty.Value, error) {
	switch v := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case uint64:
		return cty.NumberUIntVal(v), nil
	case float64:
		if math.IsNaN(v) {
			return cty.NilVal, errors.New("NaN is not a valid number")
		}
		return cty.NumberFloatVal(v), nil
	case *big.Int:
		return cty.NumberVal(new(big.Float).SetInt(v)), nil
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(v))
		for _, e := range v {
			ev, err := toCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, ev)
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(v))
		for k, e := range v {
			av, err := toCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = av
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}
