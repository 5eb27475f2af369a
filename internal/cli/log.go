package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assetgraft/pkg/pipeline"
)

// newLogger creates the command logger. Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// runTimer reports how long an edit run took, overall and per stage.
type runTimer struct {
	logger *log.Logger
	start  time.Time
}

func startTimer(l *log.Logger) *runTimer {
	return &runTimer{logger: l, start: time.Now()}
}

// done logs msg with the total elapsed time, e.g. "Edited Arena.umap (12ms)",
// followed by the stage breakdown at debug level.
func (t *runTimer) done(msg string, stats pipeline.Stats) {
	t.logger.Infof("%s (%s)", msg, time.Since(t.start).Round(time.Millisecond))
	if kv := stageTimings(stats); len(kv) > 0 {
		t.logger.Debug("stage timings", kv...)
	}
}

// stageTimings flattens stats into logger key-value pairs in pipeline
// order. Stages that did not run are left out.
func stageTimings(stats pipeline.Stats) []any {
	stages := []struct {
		key string
		d   time.Duration
	}{
		{"load", stats.LoadTime},
		{"edit", stats.EditTime},
		{"transplant", stats.TransplantTime},
		{"save", stats.SaveTime},
	}
	var kv []any
	for _, s := range stages {
		if s.d > 0 {
			kv = append(kv, s.key, s.d.Round(time.Microsecond))
		}
	}
	return kv
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() outside a
// command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
