package canvas

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// RenderJSON exports the canvas scene (cursor state and path list) as
// pretty-printed JSON, for embedders that render the turtle scene with
// something other than the bundled SVG exporter.
func (c *Canvas) RenderJSON() (string, error) {
	doc := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("x", c.X)
	set("y", c.Y)
	set("angle", c.Angle)
	set("background", c.BGColor)
	set("penDown", c.PenDown)
	set("turtleVisible", c.TurtleVisible)
	if err != nil {
		return "", err
	}

	for i, p := range c.Paths {
		base := "paths." + strconv.Itoa(i)
		set(base+".stroke", p.Stroke)
		set(base+".fill", p.Fill)
		for j, m := range p.Moves {
			set(base+".moves."+strconv.Itoa(j), m.Render())
		}
	}
	if err != nil {
		return "", err
	}
	return string(pretty.Pretty([]byte(doc))), nil
}

// PathCount reads back the number of paths from a RenderJSON document,
// a thin gjson-backed helper used by tests to assert on exported scenes
// without re-parsing the whole structure.
func PathCount(doc string) int {
	return int(gjson.Get(doc, "paths.#").Int())
}
