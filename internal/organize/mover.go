package organize

import (
	"log/slog"
	"path/filepath"
)

// Decision is the operator's answer when a destination already exists.
// The -All variants are sticky for the remainder of the batch.
type Decision int

const (
	Overwrite Decision = iota
	Skip
	OverwriteAll
	SkipAll
)

// ConflictFunc is consulted once per conflicting destination. It is not
// called again after a sticky decision.
type ConflictFunc func(from, to string) Decision

// Failure records one file that was not moved and why.
type Failure struct {
	Path   string
	Reason string
}

// Result aggregates the batch outcome. The batch itself never fails; a
// partial result lists the files that did.
type Result struct {
	Succeeded int
	Failures  []Failure
}

// Complete reports whether every operation in the batch succeeded.
func (r Result) Complete() bool {
	return len(r.Failures) == 0
}

// Mover executes planned moves sequentially against a Filesystem.
type Mover struct {
	fs  Filesystem
	log *slog.Logger
}

// NewMover creates a batch mover. A nil logger uses slog.Default.
func NewMover(fs Filesystem, log *slog.Logger) *Mover {
	if log == nil {
		log = slog.Default()
	}
	return &Mover{fs: fs, log: log}
}

// Run processes ops strictly in input order, one file at a time, assigning
// each a terminal outcome. A file's failure never stops the rest of the
// batch, and a skip or failure never touches the source file.
func (m *Mover) Run(ops []MoveOperation, conflict ConflictFunc) Result {
	var result Result
	var sticky *Decision

	for i := range ops {
		op := &ops[i]

		// Already in place; moving a file onto itself would truncate it.
		if op.To == op.From {
			op.Outcome = Succeeded
			result.Succeeded++
			continue
		}

		if m.fs.Exists(op.To) {
			decision := Skip
			switch {
			case sticky != nil:
				decision = *sticky
			case conflict != nil:
				decision = conflict(op.From, op.To)
				if decision == OverwriteAll || decision == SkipAll {
					sticky = &decision
				}
			}
			if decision == Skip || decision == SkipAll {
				op.Outcome = Skipped
				op.Reason = ErrTargetExists.Error()
				result.Failures = append(result.Failures, Failure{Path: op.From, Reason: op.Reason})
				m.log.Info("move skipped", "from", op.From, "to", op.To)
				continue
			}
		}

		if err := m.fs.MkdirAll(filepath.Dir(op.To)); err != nil {
			m.fail(op, &result, err.Error())
			continue
		}
		if err := m.fs.Move(op.From, op.To); err != nil {
			m.fail(op, &result, err.Error())
			continue
		}

		op.Outcome = Succeeded
		result.Succeeded++
		m.log.Debug("file moved", "from", op.From, "to", op.To)
	}

	return result
}

func (m *Mover) fail(op *MoveOperation, result *Result, reason string) {
	op.Outcome = Failed
	op.Reason = reason
	result.Failures = append(result.Failures, Failure{Path: op.From, Reason: reason})
	m.log.Warn("move failed", "from", op.From, "to", op.To, "error", reason)
}
