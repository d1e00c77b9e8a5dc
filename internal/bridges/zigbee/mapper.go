package zigbee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nerrad567/slate-logic-core/internal/device"
)

// CapabilityType maps a gateway capability type to the internal data
// type. Unknown vendor types map to TypeUnsupported; the caller decides
// whether to drop or report them.
func CapabilityType(vendor string) device.DataType {
	switch vendor {
	case "binary":
		return device.TypeBoolean
	case "numeric":
		return device.TypeNumeric
	case "enum":
		return device.TypeString
	default:
		return device.TypeUnsupported
	}
}

// WireToTyped coerces raw wire text into the declared contact type.
//
// Coercion never fails: text that does not fit the declared type passes
// through unchanged as a string. Downstream consumers rely on this
// fallback to see the raw value rather than losing the report.
//
//   - boolean: "true"/"on" → true, "false"/"off" → false
//     (case-insensitive); anything else passes through.
//   - numeric: base-10 float parse; unparsable text passes through.
//   - other types: text passes through.
func WireToTyped(dt device.DataType, raw string) any {
	switch dt {
	case device.TypeBoolean:
		switch strings.ToLower(raw) {
		case "true", "on":
			return true
		case "false", "off":
			return false
		}
		return raw
	case device.TypeNumeric:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
		return raw
	default:
		return raw
	}
}

// typedToWire renders a value for the gateway's command payloads.
// Boolean text becomes the gateway's ON/OFF convention; everything
// else is sent verbatim.
func typedToWire(value any) string {
	text := valueText(value)
	switch strings.ToLower(text) {
	case "true":
		return "ON"
	case "false":
		return "OFF"
	}
	return text
}

func valueText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
