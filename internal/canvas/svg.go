package canvas

import (
	"fmt"
	"strings"
)

// RenderSVG exports the canvas as a standalone SVG document sized
// width×height, centered on the origin the turtle moves relative to.
func (c *Canvas) RenderSVG(width, height int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%d %d %d %d">`,
		width, height, -width/2, -height/2, width, height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, -width/2, -height/2, width, height, c.BGColor)
	b.WriteString("\n")
	for _, p := range c.Paths {
		if len(p.Moves) == 0 {
			continue
		}
		d := pathData(p)
		fmt.Fprintf(&b, `<path d="%s" stroke="%s" fill="%s"/>`, d, p.Stroke, p.Fill)
		b.WriteString("\n")
	}
	if c.TurtleVisible {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="4" fill="red"/>`, f(c.X), f(c.Y))
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func pathData(p *Path) string {
	parts := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		parts[i] = m.Render()
	}
	return strings.Join(parts, " ")
}
