package drawable

import "fmt"

// Style selects the primitive topology used when drawing a handle.
type Style uint8

// The supported primitive topologies.
const (
	Points Style = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

var styleNames = map[Style]string{
	Points:        "points",
	Lines:         "lines",
	LineStrip:     "line_strip",
	LineLoop:      "line_loop",
	Triangles:     "triangles",
	TriangleStrip: "triangle_strip",
	TriangleFan:   "triangle_fan",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// Parse a style from its name.
func ParseStyle(name string) (Style, error) {
	for style, styleName := range styleNames {
		if styleName == name {
			return style, nil
		}
	}
	return 0, fmt.Errorf("drawable: unknown draw style %q", name)
}
