package render

import (
	"fmt"
	"strconv"
)

// Bindings maps variable names to the values substituted during a render
// call. Values are strings, booleans, or other primitives convertible to
// text. A binding set lives for a single render call; the renderer never
// mutates or retains it.
type Bindings map[string]any

// formatValue converts a bound value to the text spliced into the output.
// Booleans render as their lowercase literal so the result stays valid YAML
// scalar syntax.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
