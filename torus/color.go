package torus

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHexColor converts "rrggbb" (optionally prefixed with '#') into
// RGB components in [0, 1].
func ParseHexColor(hex string) ([3]float32, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return [3]float32{}, fmt.Errorf("invalid hex color length: %q", hex)
	}
	var rgb [3]float32
	for i := range rgb {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]float32{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		rgb[i] = float32(v) / 255
	}
	return rgb, nil
}
