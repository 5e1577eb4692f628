package selection

import (
	"io"
	"log/slog"
)

// Observer receives diagnostics from the selection model. Operations
// addressed to unknown ids are no-ops for the user; the observer is how they
// reach a log.
type Observer interface {
	OnUnknownReference(op, id string)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) OnUnknownReference(string, string) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes selection diagnostics to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnUnknownReference(op, id string) {
	o.logger.Warn("selection_unknown_reference", "op", op, "id", id)
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
