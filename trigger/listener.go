package trigger

import (
	"context"

	"go.uber.org/zap"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
)

// Event signals that a model was created.
type Event struct {
	Model   string `json:"model"`
	Success bool   `json:"success"`
}

// Generator runs one scaffold generation.
type Generator interface {
	Generate(ctx context.Context, model, table string) (*gen.Result, error)
}

// Outcome classifies how an event was handled.
type Outcome string

// Event outcomes.
const (
	Generated Outcome = "generated"
	Skipped   Outcome = "skipped"
	Failed    Outcome = "failed"
)

// Report describes the handling of one event.
type Report struct {
	Model   string      `json:"model"`
	Table   string      `json:"table,omitempty"`
	Outcome Outcome     `json:"outcome"`
	Reason  string      `json:"reason,omitempty"`
	Result  *gen.Result `json:"-"`
}

// Listener handles model creation events.
type Listener struct {
	gen Generator
	log *zap.Logger
}

// NewListener returns a Listener running g. A nil logger discards output.
func NewListener(g Generator, log *zap.Logger) *Listener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Listener{gen: g, log: log}
}

// Handle generates the scaffold of the event's model. Unsuccessful
// events and missing tables are no-ops. Generator errors are logged and
// reported as Failed, never returned.
func (l *Listener) Handle(ctx context.Context, ev Event) Report {
	model := gen.ModelName(ev.Model)
	rep := Report{Model: model}
	log := l.log.With(zap.String("model", model))
	switch {
	case !ev.Success:
		rep.Outcome, rep.Reason = Skipped, "unsuccessful event"
		log.Debug("event ignored", zap.String("reason", rep.Reason))
		return rep
	case model == "":
		rep.Outcome, rep.Reason = Skipped, "empty model"
		log.Warn("event ignored", zap.String("reason", rep.Reason), zap.String("raw", ev.Model))
		return rep
	}
	rep.Table = gen.TableName(model)
	log = log.With(zap.String("table", rep.Table))

	res, err := l.gen.Generate(ctx, model, rep.Table)
	switch {
	case gen.IsTableNotFound(err):
		rep.Outcome, rep.Reason = Skipped, "table not found"
		log.Warn("scaffold skipped: table not found, run the migration first")
	case err != nil:
		rep.Outcome, rep.Reason, rep.Result = Failed, err.Error(), res
		log.Error("scaffold failed", zap.Error(err))
	default:
		rep.Outcome, rep.Result = Generated, res
		log.Info("scaffold done", zap.String("run_id", res.RunID), zap.Int("files", len(res.Written)))
	}
	return rep
}
