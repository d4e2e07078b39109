package context

import (
	"log/slog"

	"github.com/davecgh/go-spew/spew"
)

// SlogRecorder logs a one-line summary of each completed Action via log/slog (spec §4.10
// Tracing): formula name (or scope label), operand/result counts, and error if any. Intended
// for routine operational tracing, as opposed to DumpRecorder's full value dump.
type SlogRecorder struct {
	Logger *slog.Logger
}

// NewSlogRecorder wraps logger, or slog.Default() if nil.
func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogRecorder{Logger: logger}
}

func (r *SlogRecorder) Record(a *Action) {
	name := a.Label
	if a.Formula != nil {
		name = a.Formula.Name
	}
	if a.Err != nil {
		r.Logger.Error("ecsca: action failed", "action", name, "inputs", len(a.Inputs), "err", a.Err)
		return
	}
	r.Logger.Debug("ecsca: action completed", "action", name, "inputs", len(a.Inputs), "outputs", len(a.Outputs), "children", len(a.Children))
}

// DumpRecorder renders each completed Action with github.com/davecgh/go-spew, for deep
// interactive inspection of a recorded trace (e.g. from cmd/examplemult) rather than routine
// logging. Dumps accumulate in Lines for the caller to print or inspect.
type DumpRecorder struct {
	Lines []string
}

func (r *DumpRecorder) Record(a *Action) {
	name := a.Label
	if a.Formula != nil {
		name = a.Formula.Name
	}
	r.Lines = append(r.Lines, name+": "+spew.Sdump(a))
}
