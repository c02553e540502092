package cli

import (
	"io"
	"math"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/attitude/logging"
	"go.viam.com/attitude/spatialmath"
)

const (
	reprDCM   = "dcm"
	reprHPR   = "hpr"
	reprLLW   = "llw"
	reprRV    = "rv"
	reprQuat  = "quat"
	reprMRP   = "mrp"
	reprGibbs = "gibbs"
)

var (
	representations    = []string{reprDCM, reprHPR, reprLLW, reprRV, reprQuat, reprMRP, reprGibbs}
	representationList = strings.Join(representations, ", ")
)

func vec3(vals []float64) r3.Vector {
	return r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]}
}

// toRotation interprets vals in the named representation.
func toRotation(repr string, vals []float64) (*spatialmath.RotationMatrix, error) {
	want := 3
	switch repr {
	case reprDCM:
		want = 9
	case reprQuat:
		want = 4
	case reprLLW:
		if len(vals) == 2 {
			return spatialmath.FromLatLon(vals[0], vals[1]), nil
		}
	case reprHPR, reprRV, reprMRP, reprGibbs:
	default:
		return nil, errors.Errorf("unknown representation %q, expected one of %s", repr, representationList)
	}
	if len(vals) != want {
		return nil, errors.Errorf("%s needs %d numbers, got %d", repr, want, len(vals))
	}

	switch repr {
	case reprDCM:
		return spatialmath.NewRotationMatrix(vals)
	case reprQuat:
		return spatialmath.FromQuaternion(quat.Number{Real: vals[0], Imag: vals[1], Jmag: vals[2], Kmag: vals[3]})
	case reprHPR:
		return spatialmath.FromHPR(vals[0], vals[1], vals[2]), nil
	case reprLLW:
		return spatialmath.FromLLW(vals[0], vals[1], vals[2]), nil
	case reprRV:
		return spatialmath.FromRotationVector(vec3(vals)), nil
	case reprMRP:
		return spatialmath.FromMRP(vec3(vals)), nil
	default:
		return spatialmath.FromGibbs(vec3(vals)), nil
	}
}

// fromRotation expresses rm in the named representation.
func fromRotation(repr string, rm *spatialmath.RotationMatrix) ([]float64, error) {
	switch repr {
	case reprDCM:
		return rm.Data(), nil
	case reprHPR:
		h, p, r := spatialmath.ToHPR(rm)
		return []float64{h, p, r}, nil
	case reprLLW:
		lat, lon, wander := spatialmath.ToLLW(rm)
		return []float64{lat, lon, wander}, nil
	case reprRV:
		v := spatialmath.ToRotationVector(rm)
		return []float64{v.X, v.Y, v.Z}, nil
	case reprQuat:
		q := spatialmath.ToQuaternion(rm)
		return []float64{q.Real, q.Imag, q.Jmag, q.Kmag}, nil
	case reprMRP:
		v := spatialmath.ToMRP(rm)
		return []float64{v.X, v.Y, v.Z}, nil
	case reprGibbs:
		v, err := spatialmath.ToGibbs(rm)
		if err != nil {
			return nil, err
		}
		return []float64{v.X, v.Y, v.Z}, nil
	default:
		return nil, errors.Errorf("unknown representation %q, expected one of %s", repr, representationList)
	}
}

func representationHeader(repr string) table.Row {
	switch repr {
	case reprDCM:
		return table.Row{"a00", "a01", "a02", "a10", "a11", "a12", "a20", "a21", "a22"}
	case reprHPR:
		return table.Row{"heading", "pitch", "roll"}
	case reprLLW:
		return table.Row{"lat", "lon", "wander"}
	case reprQuat:
		return table.Row{"w", "x", "y", "z"}
	default:
		return table.Row{"x", "y", "z"}
	}
}

// degenerateTolerance is how close to ±90 degrees a pitch or latitude must be to be reported.
const degenerateTolerance = 1e-6

// warnDegenerate reports outputs whose angles are not unique.
func warnDegenerate(w io.Writer, repr string, i int, out []float64) {
	switch {
	case repr == reprHPR && math.Abs(math.Abs(out[1])-90) < degenerateTolerance:
		warningf(w, "rotation %d is at gimbal lock, heading and roll are not unique", i)
	case repr == reprLLW && math.Abs(math.Abs(out[0])-90) < degenerateTolerance:
		warningf(w, "rotation %d is at a pole, longitude and wander are not unique", i)
	}
}

// ConvertAction is the corresponding Action for 'convert'.
func ConvertAction(c *cli.Context) error {
	from, to := strings.ToLower(c.String(fromFlag)), strings.ToLower(c.String(toFlag))
	if c.Args().Len() == 0 {
		return errors.New("no rotations given")
	}
	if _, err := fromRotation(to, spatialmath.NewIdentityRotationMatrix()); err != nil {
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(append(table.Row{"#"}, representationHeader(to)...))
	for i, arg := range c.Args().Slice() {
		vals, err := parseFloats(arg)
		if err != nil {
			return err
		}
		rm, err := toRotation(from, vals)
		if err != nil {
			return errors.Wrapf(err, "rotation %d", i)
		}
		out, err := fromRotation(to, rm)
		if err != nil {
			return errors.Wrapf(err, "rotation %d", i)
		}
		warnDegenerate(c.App.ErrWriter, to, i, out)
		t.AppendRow(append(table.Row{i}, formatFloats(out...)...))
	}
	logging.Global().Debugw("converted rotations", "from", from, "to", to, "count", c.Args().Len())
	printf(c.App.Writer, "%s", t.Render())
	return nil
}
