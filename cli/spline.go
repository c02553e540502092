package cli

import (
	"github.com/golang/geo/r3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.viam.com/attitude/logging"
	"go.viam.com/attitude/spatialmath"
	"go.viam.com/attitude/spline"
	"go.viam.com/attitude/utils"
)

const (
	seriesHPR          = "hpr"
	seriesRate         = "rate"
	seriesAcceleration = "acceleration"
)

func orZero(vs []float64) []float64 {
	if len(vs) == 0 {
		return []float64{0}
	}
	return vs
}

// splineFromFlags fits a spline through the knots given on the command line.
func splineFromFlags(c *cli.Context) (*spline.RotationSpline, error) {
	cfg, err := readSplineConfig(c.Path(configFlag))
	if err != nil {
		return nil, err
	}
	times := c.Float64Slice(timesFlag)
	rms, err := spatialmath.FromHPRs(c.Float64Slice(headingFlag), orZero(c.Float64Slice(pitchFlag)), orZero(c.Float64Slice(rollFlag)))
	if err != nil {
		return nil, err
	}
	if len(rms) == 1 && len(times) > 1 {
		// every angle was a single value: hold that attitude at every knot
		for len(rms) < len(times) {
			rms = append(rms, rms[0])
		}
	}
	return spline.New(times, rms, spline.WithConfig(cfg), spline.WithLogger(logging.Global().Sublogger("spline")))
}

func toDegrees(v r3.Vector) r3.Vector {
	return v.Mul(utils.RadToDeg(1))
}

// SplineSampleAction is the corresponding Action for 'spline sample'.
func SplineSampleAction(c *cli.Context) error {
	s, err := splineFromFlags(c)
	if err != nil {
		return err
	}
	samples, err := s.Sample(c.Context, c.Float64Slice(atFlag))
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"t", "heading", "pitch", "roll", "rate x", "rate y", "rate z", "accel x", "accel y", "accel z"})
	for i, tm := range samples.Times {
		h, p, r := spatialmath.ToHPR(samples.Rotations[i])
		w, a := toDegrees(samples.AngularRates[i]), toDegrees(samples.AngularAccelerations[i])
		t.AppendRow(formatFloats(tm, h, p, r, w.X, w.Y, w.Z, a.X, a.Y, a.Z))
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

// SplinePlotAction is the corresponding Action for 'spline plot'.
func SplinePlotAction(c *cli.Context) error {
	s, err := splineFromFlags(c)
	if err != nil {
		return err
	}
	n := c.Int(samplesFlag)
	if n < 2 {
		return errors.Errorf("need at least 2 samples, got %d", n)
	}
	knots := s.Times()
	ts := make([]float64, n)
	floats.Span(ts, knots[0], knots[len(knots)-1])

	samples, err := s.Sample(c.Context, ts)
	if err != nil {
		return err
	}
	p, err := seriesPlot(samples, c.String(seriesFlag))
	if err != nil {
		return err
	}
	out := c.Path(outFlag)
	if err := p.Save(8*vg.Inch, 4*vg.Inch, out); err != nil {
		return errors.Wrapf(err, "saving plot to %q", out)
	}
	logging.Global().Infow("wrote plot", "file", out, "series", c.String(seriesFlag), "samples", n)
	printf(c.App.Writer, "wrote %s", out)
	return nil
}

// seriesPlot builds a plot of three components of the sampled spline.
func seriesPlot(samples *spline.Samples, series string) (*plot.Plot, error) {
	ts := samples.Times
	var names [3]string
	comps := [3]plotter.XYs{make(plotter.XYs, len(ts)), make(plotter.XYs, len(ts)), make(plotter.XYs, len(ts))}
	set := func(i int, vals ...float64) {
		for j, v := range vals {
			comps[j][i].X, comps[j][i].Y = ts[i], v
		}
	}

	p := plot.New()
	p.X.Label.Text = "time"
	switch series {
	case seriesHPR:
		names = [3]string{"heading", "pitch", "roll"}
		p.Title.Text = "Attitude"
		p.Y.Label.Text = "deg"
		for i, rm := range samples.Rotations {
			h, pitch, r := spatialmath.ToHPR(rm)
			set(i, h, pitch, r)
		}
	case seriesRate:
		names = [3]string{"x", "y", "z"}
		p.Title.Text = "Angular rate"
		p.Y.Label.Text = "deg / time"
		for i, w := range samples.AngularRates {
			w = toDegrees(w)
			set(i, w.X, w.Y, w.Z)
		}
	case seriesAcceleration:
		names = [3]string{"x", "y", "z"}
		p.Title.Text = "Angular acceleration"
		p.Y.Label.Text = "deg / time²"
		for i, a := range samples.AngularAccelerations {
			a = toDegrees(a)
			set(i, a.X, a.Y, a.Z)
		}
	default:
		return nil, errors.Errorf("unknown series %q, expected hpr, rate or acceleration", series)
	}

	if err := plotutil.AddLines(p, names[0], comps[0], names[1], comps[1], names[2], comps[2]); err != nil {
		return nil, err
	}
	return p, nil
}
