package outs

import "fmt"

// OutcomeKind classifies how far a hand rank is from being made.
type OutcomeKind uint8

const (
	// Unreachable means the rank cannot be completed at this street.
	Unreachable OutcomeKind = iota
	// Complete means the rank is already made.
	Complete
	// NeedsOuts means the rank completes if one of Outcome.Outs cards is drawn.
	NeedsOuts
)

func (k OutcomeKind) String() string {
	switch k {
	case Unreachable:
		return "unreachable"
	case Complete:
		return "complete"
	case NeedsOuts:
		return "needs outs"
	default:
		return "unknown"
	}
}

// Outcome is the result of an outs calculation.
type Outcome struct {
	kind OutcomeKind
	outs int
}

// UnreachableOutcome reports a rank that cannot be made.
func UnreachableOutcome() Outcome {
	return Outcome{kind: Unreachable}
}

// CompleteOutcome reports a rank that is already made.
func CompleteOutcome() Outcome {
	return Outcome{kind: Complete}
}

// Needs reports a rank that needs one of n cards. n <= 0 is Complete.
func Needs(n int) Outcome {
	if n <= 0 {
		return CompleteOutcome()
	}
	return Outcome{kind: NeedsOuts, outs: n}
}

// FromInt decodes the signed form: negative is Unreachable, 0 is Complete,
// anything else is that many outs.
func FromInt(n int) Outcome {
	if n < 0 {
		return UnreachableOutcome()
	}
	return Needs(n)
}

// Kind returns the outcome variant.
func (o Outcome) Kind() OutcomeKind { return o.kind }

// Outs returns the number of outs, 0 unless Kind is NeedsOuts.
func (o Outcome) Outs() int { return o.outs }

// Reachable is false only for Unreachable.
func (o Outcome) Reachable() bool { return o.kind != Unreachable }

// Completed reports whether the rank is already made.
func (o Outcome) Completed() bool { return o.kind == Complete }

// Int returns the signed form: -1 unreachable, 0 complete, n outs.
func (o Outcome) Int() int {
	switch o.kind {
	case Unreachable:
		return -1
	case Complete:
		return 0
	default:
		return o.outs
	}
}

func (o Outcome) String() string {
	if o.kind == NeedsOuts {
		return fmt.Sprintf("%d outs", o.outs)
	}
	return o.kind.String()
}

// MarshalText encodes the outcome as its String form.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
