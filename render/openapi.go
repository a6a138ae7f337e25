package render

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/typesmith/json2type/synth"
)

// OpenAPI renders the result as an OpenAPI schema document. Literal slots
// become enums, optional fields fall out of the required list, nullable
// values set the nullable flag.
func OpenAPI(res *synth.Result) ([]byte, error) {
	s := openAPISchema(res.Root)
	bs, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(bs, '\n'), nil
}

func openAPISchema(t synth.Type) *openapi3.Schema {
	switch t.Kind() {
	case synth.KindScalar:
		switch t.AsScalar().P {
		case synth.String:
			return &openapi3.Schema{Type: openapi3.TypeString}
		case synth.Int:
			return &openapi3.Schema{Type: openapi3.TypeInteger}
		case synth.Float:
			return &openapi3.Schema{Type: openapi3.TypeNumber}
		case synth.Bool:
			return &openapi3.Schema{Type: openapi3.TypeBoolean}
		case synth.Null:
			return &openapi3.Schema{Nullable: true}
		case synth.Any:
			return &openapi3.Schema{}
		}
	case synth.KindLiteral:
		lit := t.AsLiteral()
		if lit.P == synth.Bool {
			enum := make([]interface{}, len(lit.Bools))
			for i, v := range lit.Bools {
				enum[i] = v
			}
			return &openapi3.Schema{Type: openapi3.TypeBoolean, Enum: enum}
		}
		enum := make([]interface{}, len(lit.Strings))
		for i, v := range lit.Strings {
			enum[i] = v
		}
		return &openapi3.Schema{Type: openapi3.TypeString, Enum: enum}
	case synth.KindStruct:
		st := t.AsStruct()
		props := make(openapi3.Schemas, len(st.Fields))
		var required []string
		for _, f := range st.Fields {
			props[f.Key] = openAPISchema(f.Type).NewRef()
			if f.Required {
				required = append(required, f.Key)
			}
		}
		return &openapi3.Schema{
			Type:       openapi3.TypeObject,
			Title:      st.Name,
			Properties: props,
			Required:   required,
		}
	case synth.KindList:
		return &openapi3.Schema{
			Type:  openapi3.TypeArray,
			Items: openAPISchema(t.AsList().Elem).NewRef(),
		}
	case synth.KindUnion:
		nullable, rest := t.AsUnion().NullMember()
		if len(rest) == 1 {
			s := openAPISchema(rest[0])
			s.Nullable = s.Nullable || nullable
			return s
		}
		refs := make(openapi3.SchemaRefs, len(rest))
		for i, m := range rest {
			refs[i] = openAPISchema(m).NewRef()
		}
		return &openapi3.Schema{OneOf: refs, Nullable: nullable}
	}
	panic("should be unreachable")
}
