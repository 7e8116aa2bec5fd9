package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/sllist"
	"github.com/vk/sllist/internal/config"
	"github.com/vk/sllist/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// ErrExpectation reports a result that differs from the script's `expect`.
var ErrExpectation = errors.New("expectation failed")

// OpError describes the operation that stopped a script.
type OpError struct {
	Source string
	Kind   config.OpKind
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Result summarizes a script run.
type Result struct {
	Script string
	// Executed counts operations that ran, including the failing one.
	Executed int
	List     *sllist.LinkedList[cty.Value]
}

// Engine runs scripts and writes `print` output to its writer.
type Engine struct {
	out      io.Writer
	renderer *Renderer
}

// New creates an engine printing to out with the given renderer.
func New(out io.Writer, renderer *Renderer) *Engine {
	if renderer == nil {
		renderer = NewRenderer(false)
	}
	return &Engine{out: out, renderer: renderer}
}

// Execute runs every operation of script in order on a fresh list.
func (e *Engine) Execute(ctx context.Context, script *config.Script) (*Result, error) {
	ctx = ctxlog.With(ctx, "script", script.Name)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Script execution started.", "ops", len(script.Ops))

	res := &Result{Script: script.Name, List: sllist.New[cty.Value]()}
	for _, op := range script.Ops {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Executed++

		opErr := e.apply(ctx, res.List, op)
		if err := checkOutcome(op, opErr); err != nil {
			logger.Debug("Operation failed.", "source", op.Source, "op", op.Kind, "error", err)
			return res, &OpError{Source: op.Source, Kind: op.Kind, Err: err}
		}
		logger.Debug("Operation completed.", "source", op.Source, "op", op.Kind, "error", opErr)
	}

	logger.Debug("Script execution finished.", "executed", res.Executed, "count", res.List.Count())
	return res, nil
}

// checkOutcome compares the error an operation produced with the error kind
// the script expected.
func checkOutcome(op *config.Op, err error) error {
	if op.ExpectError == "" {
		return err
	}
	want := errorForKind(op.ExpectError)
	if err == nil {
		return fmt.Errorf("%w: expected %s error, operation succeeded", ErrExpectation, op.ExpectError)
	}
	if !errors.Is(err, want) {
		return fmt.Errorf("%w: expected %s error, got: %w", ErrExpectation, op.ExpectError, err)
	}
	return nil
}

func errorForKind(kind string) error {
	switch kind {
	case config.ErrKindInvalidArgument:
		return sllist.ErrInvalidArgument
	case config.ErrKindIndexOutOfRange:
		return sllist.ErrIndexOutOfRange
	default:
		return fmt.Errorf("unknown error kind %q", kind)
	}
}

func (e *Engine) apply(ctx context.Context, list *sllist.LinkedList[cty.Value], op *config.Op) error {
	if err := checkArgs(op); err != nil {
		return err
	}

	switch op.Kind {
	case config.OpInsert:
		if op.Value == nil {
			return missing("value")
		}
		if op.Index == nil {
			list.Insert(*op.Value)
			return nil
		}
		index, err := toInt(*op.Index, "index")
		if err != nil {
			return err
		}
		return list.InsertAt(*op.Value, index)

	case config.OpGet:
		if op.Index == nil {
			return missing("index")
		}
		index, err := toInt(*op.Index, "index")
		if err != nil {
			return err
		}
		got, err := list.Get(index)
		if err != nil {
			return err
		}
		ctxlog.FromContext(ctx).Debug("Value read.", "index", index, "value", FormatValue(got))
		return expect(op, got)

	case config.OpSet:
		if op.Index == nil {
			return missing("index")
		}
		if op.Value == nil {
			return missing("value")
		}
		index, err := toInt(*op.Index, "index")
		if err != nil {
			return err
		}
		return list.Set(index, *op.Value)

	case config.OpRemove:
		if op.Index == nil {
			return missing("index")
		}
		index, err := toInt(*op.Index, "index")
		if err != nil {
			return err
		}
		count := 1
		if op.Count != nil {
			if count, err = toInt(*op.Count, "count"); err != nil {
				return err
			}
		}
		return list.RemoveN(index, count)

	case config.OpCount:
		n := list.Count()
		ctxlog.FromContext(ctx).Debug("List counted.", "count", n)
		return expect(op, cty.NumberIntVal(int64(n)))

	case config.OpClear:
		list.Clear()
		return nil

	case config.OpPrint:
		return e.renderer.Render(e.out, list)

	default:
		return fmt.Errorf("%w: unsupported operation %q", sllist.ErrInvalidArgument, op.Kind)
	}
}

// expect checks got against the operation's expected value, if any.
func expect(op *config.Op, got cty.Value) error {
	if op.Expect == nil {
		return nil
	}
	if !got.Equals(*op.Expect).True() {
		return fmt.Errorf("%w: got %s, want %s", ErrExpectation, FormatValue(got), FormatValue(*op.Expect))
	}
	return nil
}
