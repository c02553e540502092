package cli

import (
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"go.viam.com/attitude/logging"
)

const (
	// Flags.
	configFlag  = "config"
	debugFlag   = "debug"
	logFileFlag = "log-file"
	fromFlag    = "from"
	toFlag      = "to"
	frameAFlag  = "a"
	frameBFlag  = "b"
	weightsFlag = "weights"
	timesFlag   = "times"
	headingFlag = "heading"
	pitchFlag   = "pitch"
	rollFlag    = "roll"
	atFlag      = "at"
	outFlag     = "out"
	samplesFlag = "samples"
	seriesFlag  = "series"
)

var knotFlags = []cli.Flag{
	&cli.Float64SliceFlag{
		Name:     timesFlag,
		Required: true,
		Usage:    "knot times, strictly increasing",
	},
	&cli.Float64SliceFlag{
		Name:     headingFlag,
		Required: true,
		Usage:    "knot headings in degrees, one per time or a single value",
	},
	&cli.Float64SliceFlag{
		Name:  pitchFlag,
		Usage: "knot pitches in degrees, one per time or a single value, zero if omitted",
	},
	&cli.Float64SliceFlag{
		Name:  rollFlag,
		Usage: "knot rolls in degrees, one per time or a single value, zero if omitted",
	},
}

var app = &cli.App{
	Name:            "attitude",
	Usage:           "convert, match and interpolate 3D rotations",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.PathFlag{
			Name:    configFlag,
			Aliases: []string{"c"},
			Usage:   "load spline fit configuration from `FILE`",
		},
		&cli.BoolFlag{
			Name:    debugFlag,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.PathFlag{
			Name:  logFileFlag,
			Usage: "write logs as JSON lines to `FILE` instead of stdout",
		},
	},
	Before: func(c *cli.Context) error {
		level := zapcore.InfoLevel
		if c.Bool(debugFlag) {
			level = zapcore.DebugLevel
		}
		switch {
		case c.String(logFileFlag) != "":
			logging.ReplaceGlobal(logging.NewFileLogger("attitude", c.String(logFileFlag), level))
		case c.Bool(debugFlag):
			logging.ReplaceGlobal(logging.NewDebugLogger("attitude"))
		}
		return nil
	},
	Commands: []*cli.Command{
		{
			Name:      "convert",
			Usage:     "convert rotations between representations",
			ArgsUsage: "<values> [<values> ...]",
			UsageText: "attitude convert --from hpr --to quat 30,10,5 45,0,0",
			Description: "Each argument is one rotation given as comma separated numbers:\n" +
				"  dcm   9 elements, row major\n" +
				"  hpr   heading, pitch, roll in degrees\n" +
				"  llw   latitude, longitude and optional wander angle in degrees\n" +
				"  rv    rotation vector in radians\n" +
				"  quat  w, x, y, z\n" +
				"  mrp   modified Rodrigues parameters\n" +
				"  gibbs Gibbs vector",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     fromFlag,
					Required: true,
					Usage:    "input representation: " + representationList,
				},
				&cli.StringFlag{
					Name:  toFlag,
					Value: reprDCM,
					Usage: "output representation: " + representationList,
				},
			},
			Action: ConvertAction,
		},
		{
			Name:      "match",
			Usage:     "find the rotation that best maps vectors in frame b onto vectors in frame a",
			UsageText: "attitude match --a 0,1,0,0,0,1 --b 1,0,0,0,1,0 [--weights 2,1]",
			Flags: []cli.Flag{
				&cli.Float64SliceFlag{
					Name:     frameAFlag,
					Required: true,
					Usage:    "vectors observed in frame a, flattened x,y,z triples",
				},
				&cli.Float64SliceFlag{
					Name:     frameBFlag,
					Required: true,
					Usage:    "the same vectors observed in frame b, flattened x,y,z triples",
				},
				&cli.Float64SliceFlag{
					Name:  weightsFlag,
					Usage: "non-negative weight per vector pair, uniform if omitted",
				},
			},
			Action: MatchAction,
		},
		{
			Name:            "spline",
			Usage:           "interpolate attitude between time-stamped heading, pitch and roll knots",
			HideHelpCommand: true,
			Subcommands: []*cli.Command{
				{
					Name:  "sample",
					Usage: "print attitude, angular rate and angular acceleration at query times",
					Flags: append([]cli.Flag{
						&cli.Float64SliceFlag{
							Name:     atFlag,
							Required: true,
							Usage:    "query times",
						},
					}, knotFlags...),
					Action: SplineSampleAction,
				},
				{
					Name:  "plot",
					Usage: "plot the interpolated attitude to a PNG file",
					Flags: append([]cli.Flag{
						&cli.PathFlag{
							Name:     outFlag,
							Required: true,
							Usage:    "output `FILE`",
						},
						&cli.IntFlag{
							Name:  samplesFlag,
							Value: 200,
							Usage: "number of evenly spaced samples between the first and last knot",
						},
						&cli.StringFlag{
							Name:  seriesFlag,
							Value: seriesHPR,
							Usage: "what to plot: hpr, rate or acceleration",
						},
					}, knotFlags...),
					Action: SplinePlotAction,
				},
				{
					Name:   "schema",
					Usage:  "print the JSON schema of the spline fit configuration file",
					Action: SplineSchemaAction,
				},
			},
		},
		{
			Name:   "version",
			Usage:  "print version info for this program",
			Action: VersionAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
