package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/assetgraft/pkg/pipeline"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		log   func(*log.Logger)
		want  *regexp.Regexp // nil means no output
	}{
		{
			name:  "info line",
			level: log.InfoLevel,
			log:   func(l *log.Logger) { l.Info("loaded package", "path", "Arena.umap") },
			want:  regexp.MustCompile(`^\d\d:\d\d:\d\d\.\d\d INFO loaded package path=Arena\.umap\n$`),
		},
		{
			name:  "debug hidden at info",
			level: log.InfoLevel,
			log:   func(l *log.Logger) { l.Debug("collected transplant closure") },
		},
		{
			name:  "debug shown with verbose",
			level: log.DebugLevel,
			log:   func(l *log.Logger) { l.Debug("collected transplant closure") },
			want:  regexp.MustCompile(`DEBU collected transplant closure`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newLogger(&buf, tt.level))
			got := buf.String()
			if tt.want == nil {
				if got != "" {
					t.Errorf("unexpected output %q", got)
				}
				return
			}
			if !tt.want.MatchString(got) {
				t.Errorf("output %q does not match %s", got, tt.want)
			}
		})
	}
}

func TestStageTimings(t *testing.T) {
	tests := []struct {
		name  string
		stats pipeline.Stats
		want  []any
	}{
		{"nothing ran", pipeline.Stats{}, nil},
		{
			name:  "dry run",
			stats: pipeline.Stats{LoadTime: 3 * time.Millisecond, EditTime: 1500 * time.Nanosecond},
			want:  []any{"load", 3 * time.Millisecond, "edit", 2 * time.Microsecond},
		},
		{
			name: "full run",
			stats: pipeline.Stats{
				LoadTime:       time.Millisecond,
				EditTime:       2 * time.Millisecond,
				TransplantTime: 3 * time.Millisecond,
				SaveTime:       4 * time.Millisecond,
			},
			want: []any{
				"load", time.Millisecond,
				"edit", 2 * time.Millisecond,
				"transplant", 3 * time.Millisecond,
				"save", 4 * time.Millisecond,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, stageTimings(tt.stats)); diff != "" {
				t.Errorf("stageTimings() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunTimerDone(t *testing.T) {
	stats := pipeline.Stats{LoadTime: 3 * time.Millisecond, SaveTime: time.Millisecond}

	var info bytes.Buffer
	startTimer(newLogger(&info, log.InfoLevel)).done("Edited Arena.umap", stats)
	if !strings.Contains(info.String(), "Edited Arena.umap (") {
		t.Errorf("missing completion line:\n%s", info.String())
	}
	if strings.Contains(info.String(), "stage timings") {
		t.Error("stage timings logged below debug level")
	}

	var debug bytes.Buffer
	startTimer(newLogger(&debug, log.DebugLevel)).done("Edited Arena.umap", stats)
	if !strings.Contains(debug.String(), "stage timings load=3ms save=1ms") {
		t.Errorf("missing stage breakdown:\n%s", debug.String())
	}
}

func TestEditLogsStageTimings(t *testing.T) {
	in := arenaFile(t)

	_, logs, err := execute(t, "-v", "edit", "-i", in, "--disable-actor-by-index", "3")
	if err != nil {
		t.Fatalf("edit error = %v", err)
	}
	for _, want := range []string{"Checked " + in + " (", "stage timings load="} {
		if !strings.Contains(logs, want) {
			t.Errorf("log missing %q:\n%s", want, logs)
		}
	}
	if strings.Contains(logs, "save=") {
		t.Errorf("dry run logged a save stage:\n%s", logs)
	}

	_, logs, err = execute(t, "edit", "-i", in, "--disable-actor-by-index", "3")
	if err != nil {
		t.Fatalf("edit error = %v", err)
	}
	if strings.Contains(logs, "stage timings") {
		t.Errorf("stage timings logged without --verbose:\n%s", logs)
	}
}

func TestLoggerFromContext(t *testing.T) {
	custom := newLogger(&bytes.Buffer{}, log.InfoLevel)

	tests := []struct {
		name string
		ctx  context.Context
		want *log.Logger
	}{
		{"attached", withLogger(context.Background(), custom), custom},
		{"missing", context.Background(), log.Default()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loggerFromContext(tt.ctx); got != tt.want {
				t.Errorf("loggerFromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}
