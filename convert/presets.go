package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// NoResize is the label of the "keep size" preset.
const NoResize = "No Resize"

// WidthPresets are the max widths offered by front ends.
var WidthPresets = []uint{640, 800, 1080, 1920}

// PresetLabels returns NoResize followed by the presets as "<n>px".
func PresetLabels() []string {
	labels := []string{NoResize}
	for _, w := range WidthPresets {
		labels = append(labels, fmt.Sprintf("%dpx", w))
	}
	return labels
}

// ParseMaxWidth reads "1920px", "1920", "No Resize" or "" (zero means no resize).
func ParseMaxWidth(s string) (uint, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, NoResize) || strings.EqualFold(s, "none") {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(s), "px"))
	if err != nil {
		return 0, fmt.Errorf("invalid max width %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid max width %q: must be positive", s)
	}
	return uint(n), nil
}
