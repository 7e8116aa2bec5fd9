package yamlcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sllist/internal/config"
	"github.com/zclconf/go-cty/cty"
)

const scenarioYAML = `
ops:
  - op: insert
    value: 10
  - op: insert
    value: 20
  - op: insert
    value: 15
    index: 1
  - op: get
    index: 1
    expect: 15
  - op: remove
    index: 0
    count: 2
  - op: count
    expect: 1
  - op: insert
    value: a
    index: -1
    expect_error: invalid_argument
`

func TestParse_Scenario(t *testing.T) {
	script, err := NewLoader().Parse(context.Background(), []byte(scenarioYAML), "scenario.yaml")
	require.NoError(t, err)
	assert.Equal(t, "scenario.yaml", script.Name)
	require.Len(t, script.Ops, 7)

	first := script.Ops[0]
	assert.Equal(t, config.OpInsert, first.Kind)
	assert.Equal(t, "scenario.yaml:3", first.Source)
	require.NotNil(t, first.Value)
	assert.True(t, first.Value.RawEquals(cty.NumberIntVal(10)))
	assert.Nil(t, first.Index)
	assert.Nil(t, first.Count)

	insertAt := script.Ops[2]
	require.NotNil(t, insertAt.Index)
	assert.True(t, insertAt.Index.RawEquals(cty.NumberIntVal(1)))

	last := script.Ops[6]
	assert.True(t, last.Value.RawEquals(cty.StringVal("a")))
	assert.True(t, last.Index.RawEquals(cty.NumberIntVal(-1)))
	assert.Equal(t, config.ErrKindInvalidArgument, last.ExpectError)
}

func TestParse_Values(t *testing.T) {
	src := `
ops:
  - {op: insert, value: 1.5}
  - {op: insert, value: true}
  - {op: insert, value: [1, x]}
  - {op: insert, value: {name: x}}
  - {op: insert, value: null}
  - {op: insert, value: []}
`
	script, err := NewLoader().Parse(context.Background(), []byte(src), "values.yaml")
	require.NoError(t, err)
	require.Len(t, script.Ops, 6)

	assert.True(t, script.Ops[0].Value.RawEquals(cty.NumberFloatVal(1.5)))
	assert.True(t, script.Ops[1].Value.RawEquals(cty.True))
	assert.True(t, script.Ops[2].Value.RawEquals(cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.StringVal("x")})))
	assert.True(t, script.Ops[3].Value.RawEquals(cty.ObjectVal(map[string]cty.Value{"name": cty.StringVal("x")})))
	assert.Nil(t, script.Ops[4].Value)
	assert.True(t, script.Ops[5].Value.RawEquals(cty.EmptyTupleVal))
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "malformed", src: "ops: [", wantErr: "failed to parse YAML file"},
		{name: "unknown operation", src: "ops:\n  - op: push\n", wantErr: `unknown operation "push"`},
		{name: "missing operation", src: "ops:\n  - value: 1\n", wantErr: `unknown operation ""`},
		{name: "unknown expect_error", src: "ops:\n  - op: get\n    expect_error: boom\n", wantErr: `unknown expect_error "boom"`},
		{name: "non-string keys", src: "ops:\n  - op: insert\n    value: {1: a}\n", wantErr: "unsupported YAML value"},
		{name: "NaN value", src: "ops:\n  - op: insert\n    value: .nan\n", wantErr: "NaN is not a valid number"},
		{name: "NaN inside a list", src: "ops:\n  - op: insert\n    value: [1, .NaN]\n", wantErr: "NaN is not a valid number"},
		{name: "unknown op key", src: "ops:\n  - op: insert\n    value: 1\n    indx: 5\n", wantErr: `unknown field "indx"`},
		{name: "unknown top-level key", src: "opz:\n  - op: insert\n", wantErr: "field opz not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Parse(context.Background(), []byte(tc.src), "bad.yaml")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParse_Infinity(t *testing.T) {
	src := "ops:\n  - op: insert\n    value: .inf\n  - op: insert\n    value: -.inf\n"
	script, err := NewLoader().Parse(context.Background(), []byte(src), "inf.yaml")
	require.NoError(t, err)
	require.Len(t, script.Ops, 2)

	assert.True(t, script.Ops[0].Value.AsBigFloat().IsInf())
	assert.Equal(t, 1, script.Ops[0].Value.AsBigFloat().Sign())
	assert.True(t, script.Ops[1].Value.AsBigFloat().IsInf())
	assert.Equal(t, -1, script.Ops[1].Value.AsBigFloat().Sign())
}

func TestParse_Empty(t *testing.T) {
	script, err := NewLoader().Parse(context.Background(), nil, "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, script.Ops)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))

	script, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, script.Ops, 7)

	_, err = NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read YAML file")
}
