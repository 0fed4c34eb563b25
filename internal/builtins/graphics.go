package builtins

import (
	"github.com/cwbudde/goscm/internal/canvas"
	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/value"
)

// asCanvas performs the type assertion every graphic procedure needs to
// recover the concrete *canvas.Canvas from the `any` handle
// value.GraphicProcedure carries (see internal/value/procedure.go).
func asCanvas(c any) (*canvas.Canvas, error) {
	cv, ok := c.(*canvas.Canvas)
	if !ok {
		return nil, diagnostics.NewApplyError(diagnostics.Invalid("no canvas bound to this session"))
	}
	return cv, nil
}

func graphicFloat(name string, args []value.Value, i int) (float64, error) {
	n, err := numberArg(name, args, i)
	if err != nil {
		return 0, err
	}
	return n.AsFloat(), nil
}

// forward and backward move the turtle along its heading
// (original_source/src/builtin/graphic.rs forward/backward: backward
// negates the distance).
func forward(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("forward", 1, 1, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	d, err := graphicFloat("forward", args, 0)
	if err != nil {
		return nil, err
	}
	cv.Forward(d)
	return value.Void, nil
}

func backward(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("backward", 1, 1, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	d, err := graphicFloat("backward", args, 0)
	if err != nil {
		return nil, err
	}
	cv.Forward(-d)
	return value.Void, nil
}

// right and left rotate the turtle. Canvas.Rotate turns counterclockwise
// for a positive angle, so left passes the angle through and right
// negates it.
func right(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("right", 1, 1, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	a, err := graphicFloat("right", args, 0)
	if err != nil {
		return nil, err
	}
	cv.Rotate(-a)
	return value.Void, nil
}

func left(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("left", 1, 1, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	a, err := graphicFloat("left", args, 0)
	if err != nil {
		return nil, err
	}
	cv.Rotate(a)
	return value.Void, nil
}

// setposition jumps the turtle to (x, y) in the turtle's Cartesian
// convention (north-up), which is the canvas's y-negated coordinate
// system (original_source/src/builtin/graphic.rs setposition).
func setposition(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("setposition", 2, 2, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	x, err := graphicFloat("setposition", args, 0)
	if err != nil {
		return nil, err
	}
	y, err := graphicFloat("setposition", args, 1)
	if err != nil {
		return nil, err
	}
	cv.Move(x, -y)
	return value.Void, nil
}

// setheading sets the turtle's heading in turtle-convention degrees
// (0 = east, counterclockwise). The canvas stores the negated angle
// because its y axis points down, so north is a canvas Angle of -90.
func setheading(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("setheading", 1, 1, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	a, err := graphicFloat("setheading", args, 0)
	if err != nil {
		return nil, err
	}
	cv.AbsRotate(a)
	return value.Void, nil
}

// position returns the turtle's (x, y) in turtle-convention coordinates.
func position(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("position", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	return value.Cons(value.MakeNumber(value.Real(cv.X)), value.MakeNumber(value.Real(-cv.Y))), nil
}

// heading returns the turtle's heading in turtle-convention degrees.
func heading(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("heading", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	return value.MakeNumber(value.Real(-cv.Angle)), nil
}

func beginFill(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("begin-fill", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	cv.BeginFill()
	return value.Void, nil
}

func endFill(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("end-fill", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	cv.EndFill()
	return value.Void, nil
}

func penup(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("penup", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	cv.SetPenDown(false)
	return value.Void, nil
}

func pendown(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("pendown", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	cv.SetPenDown(true)
	return value.Void, nil
}

func resetCanvas(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("reset", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	cv.Reset()
	return value.Void, nil
}

func showTurtle(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("showturtle", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	cv.SetVisible(true)
	return value.Void, nil
}

func hideTurtle(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("hideturtle", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	cv.SetVisible(false)
	return value.Void, nil
}

func isVisible(args []value.Value, c any) (value.Value, error) {
	if err := diagnostics.ArityError("visible?", 0, 0, len(args)); err != nil {
		return nil, err
	}
	cv, err := asCanvas(c)
	if err != nil {
		return nil, err
	}
	return value.Bool(cv.IsVisible()), nil
}
