package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/typesmith/json2type/synth"
)

// GoSource renders the result as Go struct declarations with json tags.
// Go has no literal types, so literal-constrained fields keep their base
// type and carry a trailing comment listing the permitted values. Optional
// fields get omitempty; nullable values become pointers.
func GoSource(res *synth.Result) []byte {
	var b strings.Builder
	b.WriteString("// Code generated by json2type. DO NOT EDIT.\n\n")
	b.WriteString("package types\n")

	for _, st := range res.Structs {
		b.WriteString("\n")
		fmt.Fprintf(&b, "type %sRecord struct {\n", st.Name)
		for _, f := range st.Fields {
			tag := f.Key
			if !f.Required {
				tag += ",omitempty"
			}
			fmt.Fprintf(&b, "\t%s %s `json:%q`", goFieldName(f.Key), goType(f.Type), tag)
			if c := goComment(f.Type); c != "" {
				b.WriteString(" // " + c)
			}
			b.WriteString("\n")
		}
		b.WriteString("}\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "type %s = %s\n", rootAlias(res), goType(res.Root))
	return []byte(b.String())
}

func rootAlias(res *synth.Result) string {
	if len(res.Structs) > 0 {
		return res.Structs[len(res.Structs)-1].Name
	}
	return "Root"
}

func goType(t synth.Type) string {
	switch t.Kind() {
	case synth.KindScalar:
		switch t.AsScalar().P {
		case synth.String:
			return "string"
		case synth.Int:
			return "int64"
		case synth.Float:
			return "float64"
		case synth.Bool:
			return "bool"
		case synth.Null, synth.Any:
			return "any"
		}
	case synth.KindLiteral:
		if t.AsLiteral().P == synth.Bool {
			return "bool"
		}
		return "string"
	case synth.KindStruct:
		st := t.AsStruct()
		if len(st.Fields) == 0 {
			return "map[string]any"
		}
		return st.Name + "Record"
	case synth.KindList:
		return "[]" + goType(t.AsList().Elem)
	case synth.KindUnion:
		nullable, rest := t.AsUnion().NullMember()
		if nullable && len(rest) == 1 {
			inner := goType(rest[0])
			if inner == "any" {
				return "any"
			}
			return "*" + inner
		}
		return "any"
	}
	panic("should be unreachable")
}

// goComment surfaces the permitted values a literal field allows, since
// the Go type itself cannot.
func goComment(t synth.Type) string {
	lit := literalOf(t)
	if lit == nil || lit.P != synth.String {
		return ""
	}
	vs := make([]string, len(lit.Strings))
	for i, v := range lit.Strings {
		vs[i] = fmt.Sprintf("%q", v)
	}
	return "one of: " + strings.Join(vs, ", ")
}

func literalOf(t synth.Type) *synth.LiteralType {
	switch t.Kind() {
	case synth.KindLiteral:
		return t.AsLiteral()
	case synth.KindUnion:
		if nullable, rest := t.AsUnion().NullMember(); nullable && len(rest) == 1 && rest[0].Kind() == synth.KindLiteral {
			return rest[0].AsLiteral()
		}
	}
	return nil
}

// goFieldName exports a json key as a Go identifier. A key that starts
// with a digit gets an "N" prefix since identifiers cannot.
func goFieldName(key string) string {
	var b strings.Builder
	upper := true
	for _, r := range key {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		return "Field"
	}
	if r := []rune(name)[0]; unicode.IsDigit(r) {
		return "N" + name
	}
	return name
}
