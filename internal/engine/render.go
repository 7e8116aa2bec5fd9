package engine

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/vk/sllist"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Renderer writes a list as `[a -> b -> c]`.
type Renderer struct {
	colored bool
}

// NewRenderer returns a renderer. Colors are applied only when colored is
// true and the terminal supports them.
func NewRenderer(colored bool) *Renderer {
	return &Renderer{colored: colored}
}

// Render walks the chain from its head and writes one line to w.
func (r *Renderer) Render(w io.Writer, list *sllist.LinkedList[cty.Value]) error {
	var b strings.Builder
	b.WriteString(r.paint(color.Gray, "["))
	for n := list.Head(); n != nil; n = n.Next() {
		if n != list.Head() {
			b.WriteString(r.paint(color.Gray, " -> "))
		}
		b.WriteString(r.paint(color.Cyan, FormatValue(n.Value())))
	}
	b.WriteString(r.paint(color.Gray, "]"))

	_, err := fmt.Fprintln(w, b.String())
	return err
}

func (r *Renderer) paint(c color.Color, s string) string {
	if !r.colored {
		return s
	}
	return c.Sprint(s)
}

// FormatValue renders a single value. Strings are quoted so they stay
// distinguishable from numbers.
func FormatValue(v cty.Value) string {
	switch {
	case v.IsNull():
		return "null"
	case !v.IsKnown():
		return "(unknown)"
	case v.Type().Equals(cty.String):
		return strconv.Quote(v.AsString())
	case v.Type().Equals(cty.Number):
		return v.AsBigFloat().Text('f', -1)
	case v.Type().Equals(cty.Bool):
		return strconv.FormatBool(v.True())
	}

	buf, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return v.GoString()
	}
	return string(buf)
}
