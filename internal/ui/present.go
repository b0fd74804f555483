package ui

// present.go renders decoded pages as an indented, human-readable dump.
// Fields are printed in struct declaration order under their JSON names.

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const indentUnit = "    "

// knower is implemented by the closed enums in models
type knower interface {
	Known() bool
}

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

// Presenter writes decoded values to w
type Presenter struct {
	w     io.Writer
	color bool

	typeStyle   lipgloss.Style
	fieldStyle  lipgloss.Style
	stringStyle lipgloss.Style
	enumStyle   lipgloss.Style
	noneStyle   lipgloss.Style
}

// NewPresenter creates a presenter. With color disabled the output is plain
// text; otherwise styles follow the color profile of w.
func NewPresenter(w io.Writer, color bool) *Presenter {
	p := &Presenter{w: w, color: color}
	if !color {
		return p
	}

	r := lipgloss.NewRenderer(w)
	p.typeStyle = r.NewStyle().Foreground(ColorAccent).Bold(true)
	p.fieldStyle = r.NewStyle().Foreground(ColorText)
	p.stringStyle = r.NewStyle().Foreground(ColorString)
	p.enumStyle = r.NewStyle().Foreground(ColorPortal).Bold(true)
	p.noneStyle = r.NewStyle().Foreground(ColorTextDim).Italic(true)
	return p
}

// Present writes v followed by a newline
func (p *Presenter) Present(v any) error {
	var b strings.Builder
	p.render(&b, reflect.ValueOf(v), 0)
	b.WriteString("\n")
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Render returns the dump of v as a string without writing it
func (p *Presenter) Render(v any) string {
	var b strings.Builder
	p.render(&b, reflect.ValueOf(v), 0)
	return b.String()
}

// Present writes v to w using color when w is a terminal
func Present(w io.Writer, v any) error {
	return NewPresenter(w, IsTerminalWriter(w)).Present(v)
}

// paint applies st only when color output is enabled
func (p *Presenter) paint(st lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return st.Render(s)
}

func (p *Presenter) render(b *strings.Builder, v reflect.Value, depth int) {
	if !v.IsValid() {
		b.WriteString(p.paint(p.noneStyle, "None"))
		return
	}

	if v.Type() == rawMessageType {
		b.WriteString(string(v.Bytes()))
		return
	}

	if v.CanInterface() {
		if k, ok := v.Interface().(knower); ok && v.Kind() == reflect.String {
			p.renderEnum(b, v.String(), k.Known())
			return
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			b.WriteString(p.paint(p.noneStyle, "None"))
			return
		}
		elem := v.Elem()
		// Optional scalars are shown as Some(...); pages and records are shown bare
		if v.Kind() == reflect.Pointer && elem.Kind() != reflect.Struct {
			b.WriteString("Some(")
			p.render(b, elem, depth)
			b.WriteString(")")
			return
		}
		p.render(b, elem, depth)

	case reflect.Struct:
		p.renderStruct(b, v, depth)

	case reflect.Slice, reflect.Array:
		p.renderList(b, v, depth)

	case reflect.String:
		b.WriteString(p.paint(p.stringStyle, strconv.Quote(v.String())))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))

	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))

	default:
		fmt.Fprintf(b, "%v", v.Interface())
	}
}

func (p *Presenter) renderEnum(b *strings.Builder, raw string, known bool) {
	if known {
		b.WriteString(p.paint(p.enumStyle, raw))
		return
	}
	b.WriteString(p.paint(p.enumStyle, "Unknown"))
	b.WriteString("(")
	b.WriteString(p.paint(p.stringStyle, strconv.Quote(raw)))
	b.WriteString(")")
}

func (p *Presenter) renderStruct(b *strings.Builder, v reflect.Value, depth int) {
	t := v.Type()
	b.WriteString(p.paint(p.typeStyle, typeName(t)))
	b.WriteString(" {\n")

	inner := strings.Repeat(indentUnit, depth+1)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := fieldName(f)
		if name == "-" {
			continue
		}
		b.WriteString(inner)
		b.WriteString(p.paint(p.fieldStyle, name))
		b.WriteString(": ")
		p.render(b, v.Field(i), depth+1)
		b.WriteString(",\n")
	}

	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString("}")
}

func (p *Presenter) renderList(b *strings.Builder, v reflect.Value, depth int) {
	if v.Len() == 0 {
		b.WriteString("[]")
		return
	}

	b.WriteString("[\n")
	inner := strings.Repeat(indentUnit, depth+1)
	for i := 0; i < v.Len(); i++ {
		b.WriteString(inner)
		p.render(b, v.Index(i), depth+1)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString("]")
}

// typeName strips the package-qualified type arguments from generic names,
// so Page[github.com/.../models.Character] prints as Page<Character>
func typeName(t reflect.Type) string {
	name := t.Name()
	i := strings.IndexByte(name, '[')
	if i < 0 {
		return name
	}
	arg := strings.TrimSuffix(name[i+1:], "]")
	if j := strings.LastIndexByte(arg, '.'); j >= 0 {
		arg = arg[j+1:]
	}
	return name[:i] + "<" + arg + ">"
}

// fieldName returns the JSON name of a struct field, falling back to the Go name
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return f.Name
}
