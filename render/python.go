package render

import (
	"fmt"
	"strings"

	"github.com/typesmith/json2type/synth"
)

// Python renders the result as TypedDict declarations: a typing prelude,
// one class per struct in dependency order, and a final RootType alias.
// Structs with no fields render inline as dict[str, t.Any] and get no
// class of their own.
func Python(res *synth.Result) []byte {
	var b strings.Builder
	b.WriteString("import typing as t\n\n")

	for _, st := range res.Structs {
		if len(st.Fields) == 0 {
			continue
		}
		fmt.Fprintf(&b, "class %sDict(t.TypedDict):\n", st.Name)
		for _, f := range st.Fields {
			expr := pyType(f.Type)
			if !f.Required {
				expr = fmt.Sprintf("t.NotRequired[%s]", expr)
			}
			fmt.Fprintf(&b, "    %s: %s\n", f.Key, expr)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "RootType = %s\n", pyType(res.Root))
	return []byte(b.String())
}

func pyType(t synth.Type) string {
	switch t.Kind() {
	case synth.KindScalar:
		switch t.AsScalar().P {
		case synth.String:
			return "str"
		case synth.Int:
			return "int"
		case synth.Float:
			return "float"
		case synth.Bool:
			return "bool"
		case synth.Null:
			return "None"
		case synth.Any:
			return "t.Any"
		}
	case synth.KindLiteral:
		lit := t.AsLiteral()
		if lit.P == synth.Bool {
			vs := make([]string, len(lit.Bools))
			for i, v := range lit.Bools {
				if v {
					vs[i] = "True"
				} else {
					vs[i] = "False"
				}
			}
			return fmt.Sprintf("t.Literal[%s]", strings.Join(vs, ", "))
		}
		vs := make([]string, len(lit.Strings))
		for i, v := range lit.Strings {
			vs[i] = pyQuote(v)
		}
		return fmt.Sprintf("t.Literal[%s]", strings.Join(vs, ", "))
	case synth.KindStruct:
		st := t.AsStruct()
		if len(st.Fields) == 0 {
			return "dict[str, t.Any]"
		}
		return st.Name + "Dict"
	case synth.KindList:
		return fmt.Sprintf("list[%s]", pyType(t.AsList().Elem))
	case synth.KindUnion:
		return pyUnion(t.AsUnion())
	}
	panic("should be unreachable")
}

func pyUnion(u *synth.UnionType) string {
	nullable, rest := u.NullMember()

	var inner string
	switch len(rest) {
	case 0:
		return "None"
	case 1:
		inner = pyType(rest[0])
	default:
		vs := make([]string, len(rest))
		for i, m := range rest {
			vs[i] = pyType(m)
		}
		inner = fmt.Sprintf("t.Union[%s]", strings.Join(vs, ", "))
	}

	if nullable {
		return fmt.Sprintf("t.Optional[%s]", inner)
	}
	return inner
}

// pyQuote renders a string the way Python's repr does for simple strings:
// single quotes, backslash escapes for the quote and backslash itself.
func pyQuote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
