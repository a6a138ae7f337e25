// Package render serializes a synthesized type tree into a target
// language's type-declaration syntax. Rendering is pure: identical results
// render to byte-identical documents.
package render

import (
	"fmt"

	"github.com/typesmith/json2type/synth"
)

type Target string

const (
	TargetPython  Target = "python"
	TargetGo      Target = "go"
	TargetOpenAPI Target = "openapi"
)

// Render dispatches to the renderer for the given target.
func Render(res *synth.Result, target Target) ([]byte, error) {
	switch target {
	case TargetPython:
		return Python(res), nil
	case TargetGo:
		return GoSource(res), nil
	case TargetOpenAPI:
		return OpenAPI(res)
	}
	return nil, fmt.Errorf("unknown render target %q", target)
}
