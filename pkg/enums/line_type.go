package enums

import "fmt"

// LineType tags the catalog family a cart line resolves against.
type LineType string

const (
	LineTypeProduct LineType = "PRODUCT"
	LineTypeService LineType = "SERVICE"
	LineTypeAddon   LineType = "ADDON"
	LineTypeBundle  LineType = "BUNDLE"
)

var validLineTypes = []LineType{
	LineTypeProduct,
	LineTypeService,
	LineTypeAddon,
	LineTypeBundle,
}

// String implements fmt.Stringer.
func (t LineType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known LineType.
func (t LineType) IsValid() bool {
	for _, candidate := range validLineTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseLineType converts raw input into a LineType.
func ParseLineType(value string) (LineType, error) {
	t := LineType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid line type %q", value)
	}
	return t, nil
}
