package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/urfave/cli/v2"

	"go.viam.com/attitude/logging"
	"go.viam.com/attitude/spatialmath"
)

// MatchAction is the corresponding Action for 'match'.
func MatchAction(c *cli.Context) error {
	va, err := toVectors(c.Float64Slice(frameAFlag))
	if err != nil {
		return err
	}
	vb, err := toVectors(c.Float64Slice(frameBFlag))
	if err != nil {
		return err
	}
	var weights []float64
	if c.IsSet(weightsFlag) {
		weights = c.Float64Slice(weightsFlag)
	}

	rm, residual, err := spatialmath.MatchVectorsWithResidual(va, vb, weights)
	if err != nil {
		return err
	}
	logging.Global().Debugw("matched vectors", "pairs", len(va), "residual", residual)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"", "col 0", "col 1", "col 2"})
	for i := 0; i < 3; i++ {
		row := rm.Row(i)
		t.AppendRow(append(table.Row{i}, formatFloats(row.X, row.Y, row.Z)...))
	}
	residuals := make(stats.Float64Data, len(va))
	for i := range va {
		residuals[i] = va[i].Sub(rm.MulVec(vb[i])).Norm()
	}
	median, err := residuals.Median()
	if err != nil {
		return err
	}
	largest, err := residuals.Max()
	if err != nil {
		return err
	}

	t.AppendFooter(table.Row{"rms residual", formatFloat(residual)})
	t.AppendFooter(table.Row{"median residual", formatFloat(median)})
	t.AppendFooter(table.Row{"max residual", formatFloat(largest)})
	printf(c.App.Writer, "%s", t.Render())
	return nil
}
