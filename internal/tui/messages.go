package tui

import (
	"github.com/garrettladley/earth/internal/session"
)

// Messages from the gate carry it so that, after a restart, anything still
// in flight from the previous session is recognised and dropped.

type gateReadyMsg struct {
	gate     *session.Gate
	identity *session.Identity
	err      error
}

type authChangedMsg struct {
	gate     *session.Gate
	identity *session.Identity
}

type transitionsClosedMsg struct {
	gate *session.Gate
}

// surfaceRetryMsg re-delivers an auth transition that arrived before the
// terminal reported its size. seq is the transition it belongs to; a newer
// transition supersedes any retry still in flight.
type surfaceRetryMsg struct {
	gate     *session.Gate
	seq      uint64
	identity *session.Identity
	attempt  int
}

type signedOutMsg struct {
	err error
}
