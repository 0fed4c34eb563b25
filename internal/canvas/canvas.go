// Package canvas implements the retained-mode turtle-graphics surface
// spec.md's optional canvas module describes: a cursor with position and
// heading, a pen that may be up or down, and a list of paths recording
// every stroke so the scene can be replayed as SVG or JSON. Grounded on
// original_source/src/canvas.rs, which this package follows closely —
// down to the begin-fill/end-fill path-ordering quirk (the fill path is
// inserted one position before the end of the path list, so it renders
// underneath the pen trail drawn after `begin-fill`).
package canvas

import (
	"fmt"
	"math"
	"strconv"
)

// MoveKind tags the seven SVG path-data commands a turtle move can emit.
type MoveKind int

const (
	MoveAbsolute MoveKind = iota
	MoveRelative
	LineAbsolute
	LineRelative
	ClosePath
	ArcAbsolute
	ArcRelative
)

// Move is one step of a Path, rendered as SVG path-data by Render.
type Move struct {
	Kind             MoveKind
	X, Y             float64
	RX, RY, XRot     float64
	LargeArc, Sweep  bool
}

func f(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Render renders the move as an SVG path-data command.
func (m Move) Render() string {
	switch m.Kind {
	case MoveAbsolute:
		return fmt.Sprintf("M %s %s", f(m.X), f(m.Y))
	case MoveRelative:
		return fmt.Sprintf("m %s %s", f(m.X), f(m.Y))
	case LineAbsolute:
		return fmt.Sprintf("L %s %s", f(m.X), f(m.Y))
	case LineRelative:
		return fmt.Sprintf("l %s %s", f(m.X), f(m.Y))
	case ClosePath:
		return "Z"
	case ArcAbsolute:
		return fmt.Sprintf("A %s %s %s %d %d %s %s", f(m.RX), f(m.RY), f(m.XRot), flag(m.LargeArc), flag(m.Sweep), f(m.X), f(m.Y))
	case ArcRelative:
		return fmt.Sprintf("a %s %s %s %d %d %s %s", f(m.RX), f(m.RY), f(m.XRot), flag(m.LargeArc), flag(m.Sweep), f(m.X), f(m.Y))
	default:
		return ""
	}
}

// Path is one contiguous stroke/fill run: a color pair and the moves
// that describe its shape.
type Path struct {
	Stroke string
	Fill   string
	Moves  []Move
}

func newPath(x, y float64) *Path {
	return &Path{
		Stroke: "black",
		Fill:   "transparent",
		Moves:  []Move{{Kind: MoveAbsolute, X: x, Y: y}},
	}
}

// Canvas is the turtle's complete drawing state.
type Canvas struct {
	X, Y          float64
	Angle         float64
	BGColor       string
	Paths         []*Path
	FillPath      *Path
	PenDown       bool
	TurtleVisible bool
}

// New constructs a fresh Canvas with the cursor facing north at the
// origin, pen down, and the turtle visible (original_source/src/
// canvas.rs CanvasContent::default).
func New() *Canvas {
	c := &Canvas{Angle: -90, BGColor: "white", PenDown: true, TurtleVisible: true}
	c.newPath()
	return c
}

func (c *Canvas) newPath() {
	c.Paths = append(c.Paths, newPath(c.X, c.Y))
}

// Reset restores every field to its initial state and starts a fresh
// path.
func (c *Canvas) Reset() {
	c.X, c.Y = 0, 0
	c.Angle = -90
	c.BGColor = "white"
	c.Paths = nil
	c.FillPath = nil
	c.PenDown = true
	c.TurtleVisible = true
	c.newPath()
}

// SetColor starts a new path and sets its stroke color.
func (c *Canvas) SetColor(color string) {
	c.newPath()
	c.Paths[len(c.Paths)-1].Stroke = color
}

// SetBackground sets the canvas background color.
func (c *Canvas) SetBackground(color string) { c.BGColor = color }

// Move draws (if the pen is down) or jumps (if the pen is up) the
// turtle to an absolute position, also extending the in-progress fill
// path if one is open.
func (c *Canvas) Move(x, y float64) {
	last := c.Paths[len(c.Paths)-1]
	if c.PenDown {
		last.Moves = append(last.Moves, Move{Kind: LineAbsolute, X: x, Y: y})
	} else {
		last.Moves = append(last.Moves, Move{Kind: MoveAbsolute, X: x, Y: y})
	}
	if c.FillPath != nil {
		c.FillPath.Moves = append(c.FillPath.Moves, Move{Kind: LineAbsolute, X: x, Y: y})
	}
	c.X, c.Y = x, y
}

// Forward advances the turtle distance units along its current heading.
func (c *Canvas) Forward(distance float64) {
	rad := c.Angle * math.Pi / 180
	c.Move(c.X+distance*math.Cos(rad), c.Y+distance*math.Sin(rad))
}

// BeginFill opens a fill path inheriting the current path's stroke
// color as its fill.
func (c *Canvas) BeginFill() {
	last := c.Paths[len(c.Paths)-1]
	c.FillPath = &Path{Stroke: "none", Fill: last.Stroke, Moves: []Move{{Kind: MoveAbsolute, X: c.X, Y: c.Y}}}
}

// EndFill closes and commits the open fill path, inserting it just
// before the end of the path list so it renders underneath whatever the
// pen drew after BeginFill (original_source/src/canvas.rs end_fill).
func (c *Canvas) EndFill() {
	if c.FillPath == nil {
		return
	}
	c.FillPath.Moves = append(c.FillPath.Moves, Move{Kind: ClosePath})
	if len(c.Paths) == 0 {
		c.Paths = append(c.Paths, c.FillPath)
	} else {
		idx := len(c.Paths) - 1
		c.Paths = append(c.Paths, nil)
		copy(c.Paths[idx+1:], c.Paths[idx:])
		c.Paths[idx] = c.FillPath
	}
	c.FillPath = nil
}

// Rotate turns the turtle theta degrees relative to its current heading.
func (c *Canvas) Rotate(theta float64) {
	c.Angle = math.Mod(c.Angle-theta, 360)
}

// AbsRotate sets the turtle's heading to an absolute angle.
func (c *Canvas) AbsRotate(theta float64) {
	c.Angle = math.Mod(-theta, 360)
}

// SetPenDown controls whether Move draws or jumps.
func (c *Canvas) SetPenDown(down bool) { c.PenDown = down }

// SetVisible and IsVisible control/report cursor visibility.
func (c *Canvas) SetVisible(visible bool) { c.TurtleVisible = visible }
func (c *Canvas) IsVisible() bool         { return c.TurtleVisible }
