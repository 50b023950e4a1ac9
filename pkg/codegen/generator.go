// Package codegen exports a designed layout as go-tui Go source.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/mod/module"
	"golang.org/x/tools/imports"

	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/drag"
)

// DefaultTUIImport is the go-tui module path used when Options leaves it
// empty.
const DefaultTUIImport = "github.com/grindlemire/go-tui"

// Options controls generated source.
type Options struct {
	// Package is the package clause of the generated file. Default "design".
	Package string
	// FuncName names the generated constructor. Default "Design".
	FuncName string
	// TUIImport is the import path of go-tui.
	TUIImport string
	// Source is recorded in the header comment when set.
	Source string
	// Sizes overrides the rendered size of kinds. Missing kinds use
	// canvas.DefaultSizes.
	Sizes map[canvas.Kind]drag.Size
	// SkipImports uses format.Source instead of imports.Process.
	SkipImports bool
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "design"
	}
	if o.FuncName == "" {
		o.FuncName = "Design"
	}
	if o.TUIImport == "" {
		o.TUIImport = DefaultTUIImport
	}
	sizes := canvas.DefaultSizes()
	for k, s := range o.Sizes {
		sizes[k] = s
	}
	o.Sizes = sizes
	return o
}

func (o Options) validate() error {
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("codegen: package %q is not an identifier", o.Package)
	}
	if !token.IsIdentifier(o.FuncName) || !token.IsExported(o.FuncName) {
		return fmt.Errorf("codegen: func name %q is not an exported identifier", o.FuncName)
	}
	if err := module.CheckImportPath(o.TUIImport); err != nil {
		return fmt.Errorf("codegen: %w", err)
	}
	return nil
}

// generator writes Go source with tab indentation.
type generator struct {
	buf    bytes.Buffer
	indent int
	opts   Options
}

// Generate returns a formatted Go file whose constructor builds the
// components as go-tui elements.
//
// go-tui lays children out with flexbox, so absolute positions are
// expressed as margins: components are emitted top to bottom (then left to
// right), each in its own row, with a top margin covering the gap below the
// previous row and a left margin equal to its X. Components that overlap a
// previous row are placed directly below it.
func Generate(components []canvas.Component, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	g := &generator{opts: opts}
	g.header()

	ordered := append([]canvas.Component(nil), components...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Position, ordered[j].Position
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	g.writef("// %s builds the designed layout.\n", opts.FuncName)
	g.writef("func %s() *tui.Element {\n", opts.FuncName)
	g.indent++
	g.writeln("root := tui.New(tui.WithDirection(tui.Column))")
	cursor := 0
	for i, c := range ordered {
		size := opts.Sizes[c.Kind]
		x, y := cell(c.Position.X), cell(c.Position.Y)
		top := max(y-cursor, 0)
		cursor += top + cell(size.Height)

		g.writeln("")
		g.writef("// %s\n", c.ID)
		g.writef("row%d := tui.New(tui.WithDirection(tui.Row), tui.WithMarginTRBL(%d, 0, 0, %d))\n", i, top, x)
		g.component(fmt.Sprintf("el%d", i), c, size)
		g.writef("row%d.AddChild(el%d)\n", i, i)
		g.writef("root.AddChild(row%d)\n", i)
	}
	g.writeln("return root")
	g.indent--
	g.writeln("}")

	if opts.SkipImports {
		return format.Source(g.buf.Bytes())
	}
	out, err := imports.Process(opts.Package+".go", g.buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("codegen: format: %w", err)
	}
	return out, nil
}

func (g *generator) header() {
	g.writeln("// Code generated by designer export. DO NOT EDIT.")
	if g.opts.Source != "" {
		g.writef("// Source: %s\n", g.opts.Source)
	}
	g.writeln("")
	g.writef("package %s\n\n", g.opts.Package)
	g.writef("import tui %s\n\n", strconv.Quote(g.opts.TUIImport))
}

// component declares the element for c as variable name.
func (g *generator) component(name string, c canvas.Component, size drag.Size) {
	g.writef("%s := tui.New(\n", name)
	g.indent++
	if c.Kind == canvas.KindButton {
		g.button(c.Props, size)
		g.indent--
		g.writeln(")")
		return
	}
	g.writeln("tui.WithBorder(tui.BorderRounded),")
	g.writef("tui.WithSize(%d, %d),\n", cell(size.Width), cell(size.Height))

	switch c.Kind {
	case canvas.KindCard:
		title := c.Props.String("title")
		if title == "" {
			title = "Card Title"
		}
		g.writeln("tui.WithDirection(tui.Column),")
		g.writeln("tui.WithPaddingTRBL(0, 1, 0, 1),")
		g.indent--
		g.writeln(")")
		g.writef("%s.AddChild(tui.New(tui.WithText(%s), tui.WithTextStyle(tui.NewStyle().Bold())))\n", name, strconv.Quote(title))
		if desc := c.Props.String("description"); desc != "" {
			g.writef("%s.AddChild(tui.New(tui.WithText(%s)))\n", name, strconv.Quote(desc))
		}
	case canvas.KindBentoGrid:
		g.writeln("tui.WithDirection(tui.Column),")
		g.indent--
		g.writeln(")")
		g.bentoRows(name, c.Props)
	default:
		g.indent--
		g.writeln(")")
	}
}

// buttonVariants maps a button variant to its border and text style
// expressions. An empty border means none.
var buttonVariants = map[string]struct{ border, style string }{
	"primary":     {"tui.BorderRounded", "tui.NewStyle().Bold().Reverse()"},
	"secondary":   {"tui.BorderRounded", "tui.NewStyle()"},
	"outline":     {"tui.BorderSingle", "tui.NewStyle()"},
	"ghost":       {"", "tui.NewStyle()"},
	"destructive": {"tui.BorderRounded", "tui.NewStyle().Foreground(tui.Red).Bold()"},
}

// buttonPadding is the horizontal padding of each button size.
var buttonPadding = map[string]int{"sm": 0, "md": 1, "lg": 2}

// button writes the options of a button element.
func (g *generator) button(p canvas.Props, size drag.Size) {
	variant := p.String("variant")
	look, ok := buttonVariants[variant]
	if !ok {
		variant, look = "primary", buttonVariants["primary"]
	}
	sz := p.String("size")
	pad, ok := buttonPadding[sz]
	if !ok {
		sz, pad = "md", buttonPadding["md"]
	}
	text := p.String("children")
	if text == "" {
		text = "Button Text"
	}
	style := look.style
	if sz == "lg" && !strings.Contains(style, "Bold()") {
		style += ".Bold()"
	}
	if p.Bool("disabled") {
		style += ".Dim()"
	}

	g.writef("// %s %s\n", variant, sz)
	if look.border != "" {
		g.writef("tui.WithBorder(%s),\n", look.border)
	}
	g.writef("tui.WithSize(%d, %d),\n", cell(size.Width), cell(size.Height))
	g.writeln("tui.WithJustify(tui.JustifyCenter),")
	if pad > 0 {
		g.writef("tui.WithPaddingTRBL(0, %d, 0, %d),\n", pad, pad)
	}
	g.writef("tui.WithText(%s),\n", strconv.Quote(text))
	if style != "tui.NewStyle()" {
		g.writef("tui.WithTextStyle(%s),\n", style)
	}
}

// bentoRows adds one flex row per grid row to name, filling cells with
// item titles in order.
func (g *generator) bentoRows(name string, p canvas.Props) {
	cols := max(p.Int("columns", 3), 1)
	rows := max(p.Int("rows", 2), 1)
	items := p.Items("items")
	for r := 0; r < rows; r++ {
		g.writef("%s.AddChild(tui.New(tui.WithDirection(tui.Row), tui.WithFlexGrow(1)))\n", name)
	}
	for r := 0; r < rows; r++ {
		row := fmt.Sprintf("%s.Children()[%d]", name, r)
		for col := 0; col < cols; col++ {
			title := ""
			if i := r*cols + col; i < len(items) {
				title = items[i].String("title")
			}
			g.writef("%s.AddChild(tui.New(tui.WithBorder(tui.BorderSingle), tui.WithFlexGrow(1), tui.WithText(%s)))\n", row, strconv.Quote(title))
		}
	}
}

func (g *generator) writef(format string, args ...any) {
	g.writeIndent()
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

func (g *generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteByte('\t')
	}
}

// cell rounds a canvas coordinate to a whole terminal cell.
func cell(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v + 0.5)
}
