package store

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"studentsignal/pkg/models"
)

var (
	// ErrCountMismatch means the staging generation does not hold exactly
	// the assembled records. The destination is left untouched.
	ErrCountMismatch = eris.New("inserted record count does not match assembled count")

	ErrInvalidName = eris.New("invalid collection name")
)

// Writer replaces a destination collection with a complete record set.
//
// Implementations write a staging generation, verify its size and only then
// swap it into place, so a failure at any point leaves the previous
// generation readable.
type Writer interface {
	Replace(ctx context.Context, collection string, records []models.TransformedRecord) (Result, error)
}

// Result describes a finished Replace.
type Result struct {
	Collection       string
	Inserted         int
	ReplacedExisting bool
	States           []State
}

// State is a step of the replace state machine:
//
//	absent -> checking -> inserting -> verifying -> swapping -> done
//
// with any step able to end in failed.
type State string

const (
	StateAbsent    State = "absent"
	StateChecking  State = "checking"
	StateInserting State = "inserting"
	StateVerifying State = "verifying"
	StateSwapping  State = "swapping"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// tracker records and logs state transitions for one Replace call.
type tracker struct {
	log     *zap.Logger
	history []State
}

func newTracker(log *zap.Logger) *tracker {
	return &tracker{log: log, history: []State{StateAbsent}}
}

func (t *tracker) to(s State) {
	t.history = append(t.history, s)
	t.log.Debug("store: state", zap.String("state", string(s)))
}

// fail moves to StateFailed and returns err for convenience.
func (t *tracker) fail(err error) error {
	t.to(StateFailed)
	t.log.Error("store: replace failed", zap.Error(err))
	return err
}

func (t *tracker) states() []State {
	return append([]State(nil), t.history...)
}

func verifyCount(want, got int) error {
	if want != got {
		return eris.Wrapf(ErrCountMismatch, "want %d, got %d", want, got)
	}
	return nil
}
