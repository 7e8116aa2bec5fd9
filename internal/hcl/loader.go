package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sllist/internal/config"
	"github.com/vk/sllist/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL script loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read HCL file %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

var scriptSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "op", LabelNames: []string{"kind"}},
	},
}

var opBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "value"},
		{Name: "index"},
		{Name: "count"},
		{Name: "expect"},
		{Name: "expect_error"},
	},
}

// valueSetters maps attribute names to the Op field they populate.
var valueSetters = map[string]func(op *config.Op, v *cty.Value){
	"value":  func(op *config.Op, v *cty.Value) { op.Value = v },
	"index":  func(op *config.Op, v *cty.Value) { op.Index = v },
	"count":  func(op *config.Op, v *cty.Value) { op.Count = v },
	"expect": func(op *config.Op, v *cty.Value) { op.Expect = v },
}

// Parse translates HCL source into a script. The filename is used for
// diagnostics and as the script name.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Script, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL script.", "file", filename)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(scriptSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	script := &config.Script{Name: filename, Ops: make([]*config.Op, 0, len(content.Blocks))}
	for _, block := range content.Blocks {
		op, opDiags := translateOp(block)
		if opDiags.HasErrors() {
			return nil, fmt.Errorf("error parsing op in file %s: %w", filename, opDiags)
		}
		if err := op.Validate(); err != nil {
			return nil, err
		}
		script.Ops = append(script.Ops, op)
	}

	logger.Debug("HCL script parsed.", "file", filename, "ops", len(script.Ops))
	return script, nil
}

// translateOp converts a single `op` block into the agnostic model.
func translateOp(block *hcl.Block) (*config.Op, hcl.Diagnostics) {
	kind, err := config.ParseOpKind(block.Labels[0])
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported operation",
			Detail:   err.Error(),
			Subject:  block.LabelRanges[0].Ptr(),
		}}
	}

	content, diags := block.Body.Content(opBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	op := &config.Op{Kind: kind, Source: block.DefRange.String()}
	for name, attr := range content.Attributes {
		if name == "expect_error" {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &op.ExpectError)...)
			continue
		}

		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() || val.IsNull() {
			continue
		}
		valueSetters[name](op, &val)
	}
	return op, diags
}
