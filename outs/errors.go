package outs

import "errors"

var (
	ErrNoHoleCards           = errors.New("no hole cards")
	ErrTooManyHoleCards      = errors.New("too many hole cards")
	ErrTooManyCommunityCards = errors.New("too many community cards")
	ErrDuplicateCard         = errors.New("duplicate card")
	ErrUnknownHandRank       = errors.New("unknown hand rank")
)
