package inline

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/swatch-cli/swatch/export"
)

// Output is what `swatch inline --json` prints.
type Output struct {
	Palette *export.Document `json:"palette"`
	Width   int              `json:"width" jsonschema:"description=Width of the exported image in pixels"`
	Height  int              `json:"height" jsonschema:"description=Height of the exported image in pixels"`
}

func asJson(result *export.Result) ([]byte, error) {
	return json.Marshal(&Output{
		Palette: result.Document,
		Width:   result.Width,
		Height:  result.Height,
	})
}

// Schema reflects the JSON schema of target.
func Schema(target any) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "document", "tint", "output":
			return filepath.Base(t.PkgPath()) + "." + name
		}
		return name
	}

	return reflector.Reflect(target)
}
