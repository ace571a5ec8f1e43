package structure

import (
	"fmt"
	"strings"
)

// SizeClass is the target length of an optimized prompt.
type SizeClass string

const (
	Short    SizeClass = "short"
	Medium   SizeClass = "medium"
	Long     SizeClass = "long"
	VeryLong SizeClass = "very_long"
)

// SizeClasses lists the valid size classes, shortest first.
var SizeClasses = []SizeClass{Short, Medium, Long, VeryLong}

// ParseSizeClass reads a size class name. Hyphens are accepted in place of
// underscores and the empty string means Medium.
func ParseSizeClass(s string) (SizeClass, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Medium, nil
	}
	name = strings.ReplaceAll(name, "-", "_")
	for _, c := range SizeClasses {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown size class %q (use short, medium, long or very_long)", s)
}

// enrichmentsFor returns the sections appended for a size class, in order.
func enrichmentsFor(size SizeClass) []Section {
	switch size {
	case VeryLong:
		return []Section{Examples, Workflow, Considerations}
	case Long:
		return []Section{Methodology}
	default:
		return nil
	}
}
