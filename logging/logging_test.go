package logging

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debugw("fit", "knots", 3)
	logger.Infof("value %d", 7)
	logger.Warn("careful")

	test.That(t, logs.Len(), test.ShouldEqual, 3)
	test.That(t, logs.FilterMessage("fit").Len(), test.ShouldEqual, 1)
	test.That(t, logs.FilterMessage("value 7").Len(), test.ShouldEqual, 1)
	test.That(t, logs.FilterLevelExact(zapcore.WarnLevel).Len(), test.ShouldEqual, 1)

	entry := logs.FilterMessage("fit").All()[0]
	test.That(t, entry.ContextMap()["knots"], test.ShouldEqual, int64(3))
}

func TestSetLevel(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.SetLevel(zapcore.WarnLevel)
	test.That(t, logger.GetLevel(), test.ShouldEqual, zapcore.WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Error("kept")
	test.That(t, logs.Len(), test.ShouldEqual, 1)

	sub := logger.Sublogger("spline")
	sub.Warn("also kept")
	test.That(t, logs.Len(), test.ShouldEqual, 2)
	test.That(t, logs.All()[1].LoggerName, test.ShouldEqual, "spline")
}

func TestReplaceGlobal(t *testing.T) {
	orig := Global()
	defer ReplaceGlobal(orig)

	logger := NewTestLogger(t)
	ReplaceGlobal(logger)
	test.That(t, Global(), test.ShouldEqual, logger)
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attitude.log")
	logger := NewFileLogger("attitude", path, zapcore.InfoLevel)
	logger.Debug("hidden")
	logger.Sublogger("spline").Infow("fitted", "knots", 4)
	test.That(t, logger.Sync(), test.ShouldBeNil)

	data, err := os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	out := string(data)
	test.That(t, out, test.ShouldContainSubstring, `"msg":"fitted"`)
	test.That(t, out, test.ShouldContainSubstring, `"logger":"attitude.spline"`)
	test.That(t, out, test.ShouldContainSubstring, `"knots":4`)
	test.That(t, out, test.ShouldNotContainSubstring, "hidden")
}
