// Package logging sets up the stderr logger and the optional frame trace file.
//
// Commands log resolved inputs at debug. Each played frame is logged at
// LevelTrace through TraceFrame and, from debug upwards, appended to
// ~/.trainmotion/frames.jsonl by a FrameLogger so a run can be replayed
// without the terminal.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cxd309/train-motion/internal/engine"
)

// LevelTrace sits below debug and carries one record per played frame.
const LevelTrace = slog.LevelDebug - 4

var levels = map[string]slog.Level{
	"info":  slog.LevelInfo,
	"debug": slog.LevelDebug,
	"trace": LevelTrace,
}

// ParseLevel returns the level named by s, ignoring case. Anything else is info.
func ParseLevel(s string) slog.Level {
	if lvl, ok := levels[strings.ToLower(s)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// NewLogger returns a text logger on w at the named level. Frame records are
// labelled TRACE rather than slog's "DEBUG-4".
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey {
				return a
			}
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// TraceFrame logs f at LevelTrace.
func TraceFrame(ctx context.Context, logger *slog.Logger, f engine.Frame) {
	logger.Log(ctx, LevelTrace, "frame", "elapsed", f.Elapsed, "pos_a", f.PosA, "pos_b", f.PosB, "met", f.Met)
}

// FrameLogger appends played frames to frames.jsonl. A nil FrameLogger
// discards everything, so callers never need to check.
type FrameLogger struct {
	mu   sync.Mutex
	file *os.File
}

type frameEntry struct {
	Time    string       `json:"time"`
	Elapsed float64      `json:"elapsed"`
	Met     bool         `json:"met"`
	Frame   engine.Frame `json:"frame"`
}

// NewFrameLogger opens dir/frames.jsonl for append. It returns nil at info
// level or when the file cannot be opened; tracing is best effort.
func NewFrameLogger(dir string, level string) *FrameLogger {
	if ParseLevel(level) >= slog.LevelInfo {
		return nil
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "frames.jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}
	return &FrameLogger{file: f}
}

// Log appends f as one line.
func (fl *FrameLogger) Log(f engine.Frame) {
	if fl == nil {
		return
	}
	data, err := json.Marshal(frameEntry{
		Time:    time.Now().UTC().Format(time.RFC3339Nano),
		Elapsed: f.Elapsed,
		Met:     f.Met,
		Frame:   f,
	})
	if err != nil {
		return
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.file != nil {
		_, _ = fl.file.Write(append(data, '\n'))
	}
}

// Close closes the trace file. Later calls to Log are dropped.
func (fl *FrameLogger) Close() {
	if fl == nil {
		return
	}
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.file != nil {
		fl.file.Close()
		fl.file = nil
	}
}
