// Package cli contains all business logic needed by the attitude command.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/golang/geo/r3"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"go.viam.com/attitude/logging"
	"go.viam.com/attitude/spline"
	"go.viam.com/attitude/utils"
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// warningf prints a message prefixed with a bold yellow "Warning: ".
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	color.New(color.Bold, color.FgYellow).Fprint(w, "Warning: ")
	printf(w, format, a...)
}

// parseFloats parses a comma separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := cast.ToFloat64E(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", s)
		}
		out = append(out, v)
	}
	return out, nil
}

// toVectors groups a flat list of numbers into x,y,z triples.
func toVectors(flat []float64) ([]r3.Vector, error) {
	if len(flat)%3 != 0 {
		return nil, errors.Errorf("expected x,y,z triples, got %d numbers", len(flat))
	}
	out := make([]r3.Vector, len(flat)/3)
	for i := range out {
		out[i] = r3.Vector{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func formatFloats(vs ...float64) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = formatFloat(v)
	}
	return out
}

// readSplineConfig reads a spline.Config from a JSON5 file, or returns the defaults when path is empty.
func readSplineConfig(path string) (spline.Config, error) {
	cfg := spline.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading spline config")
	}
	// JSON5 so config files may carry comments and trailing commas
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, utils.NewConfigValidationError(path, err)
	}
	if err := cfg.Validate(path); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SplineSchemaAction is the corresponding Action for 'spline schema'.
func SplineSchemaAction(c *cli.Context) error {
	schema := jsonschema.Reflect(&spline.Config{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling spline config schema")
	}
	printf(c.App.Writer, "%s", data)
	return nil
}

// VersionAction is the corresponding Action for 'version'.
func VersionAction(c *cli.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("error reading build info")
	}
	if c.Bool(debugFlag) {
		printf(c.App.Writer, "%s", info.String())
	}
	settings := make(map[string]string, len(info.Settings))
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}
	version := "?"
	if rev, ok := settings["vcs.revision"]; ok && len(rev) >= 8 {
		version = rev[:8]
		if settings["vcs.modified"] == "true" {
			version += "+"
		}
	}
	gonumVersion := "?"
	for _, dep := range info.Deps {
		if dep.Path == "gonum.org/v1/gonum" {
			gonumVersion = dep.Version
		}
	}
	logging.Global().Debugw("build info", "go", info.GoVersion, "main", info.Main.Path)
	printf(c.App.Writer, "Version %s Git=%s Gonum=%s", info.Main.Version, version, gonumVersion)
	return nil
}
