// Package view tracks which console view is active and what each has
// rendered.
package view

import (
	"log/slog"

	"github.com/garrettladley/earth/internal/xerrors"
	"github.com/garrettladley/earth/internal/xslog"
)

type ID uint8

const (
	Dashboard ID = iota
	Ocean
	Nature
	Space
	Settings

	count
)

// Nav is the order of the navigation bar. Settings is reached from the
// header instead.
var Nav = []ID{Dashboard, Ocean, Nature, Space}

func (id ID) String() string {
	switch id {
	case Dashboard:
		return "dashboard"
	case Ocean:
		return "ocean"
	case Nature:
		return "nature"
	case Space:
		return "space"
	case Settings:
		return "settings"
	default:
		return "unknown"
	}
}

func (id ID) valid() bool { return id < count }

// Next and Prev cycle through the navigation bar. From Settings they land
// on the first or last nav view.
func Next(id ID) ID {
	for i, n := range Nav {
		if n == id {
			return Nav[(i+1)%len(Nav)]
		}
	}
	return Nav[0]
}

func Prev(id ID) ID {
	for i, n := range Nav {
		if n == id {
			return Nav[(i+len(Nav)-1)%len(Nav)]
		}
	}
	return Nav[len(Nav)-1]
}

// Ticket identifies one activation of a view. Work started for a ticket is
// stale once the view has been activated again or the controller replaced.
type Ticket struct {
	owner *Controller
	View  ID
	Gen   uint64
}

// Controller owns view activation. Exactly one mounted view is active once
// the first Activate succeeds.
type Controller struct {
	mounted   [count]bool
	rendered  [count]bool
	gens      [count]uint64
	active    ID
	hasActive bool
	logger    *slog.Logger
}

func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{logger: logger}
}

func (c *Controller) Mount(ids ...ID) {
	for _, id := range ids {
		if id.valid() {
			c.mounted[id] = true
		}
	}
}

func (c *Controller) Mounted(id ID) bool {
	return id.valid() && c.mounted[id]
}

// Activate makes id the only active view and starts a new generation for
// it. An unmounted id is logged and ignored.
func (c *Controller) Activate(id ID) bool {
	if !c.Mounted(id) {
		err := xerrors.MissingTarget(xerrors.WithMessage("view " + id.String() + " not mounted"))
		c.logger.Warn("view not mounted",
			xslog.View(id.String()),
			xslog.Error(err),
			xslog.ErrorKind(err.Kind),
		)
		return false
	}

	c.active = id
	c.hasActive = true
	c.gens[id]++
	return true
}

func (c *Controller) Active() (ID, bool) {
	return c.active, c.hasActive
}

func (c *Controller) IsActive(id ID) bool {
	return c.hasActive && c.active == id
}

// MarkRendered records that id's static structure exists. It reports true
// only the first time.
func (c *Controller) MarkRendered(id ID) bool {
	if !id.valid() || c.rendered[id] {
		return false
	}
	c.rendered[id] = true
	return true
}

func (c *Controller) Rendered(id ID) bool {
	return id.valid() && c.rendered[id]
}

func (c *Controller) Generation(id ID) uint64 {
	if !id.valid() {
		return 0
	}
	return c.gens[id]
}

// Current reports whether gen is id's latest activation.
func (c *Controller) Current(id ID, gen uint64) bool {
	return id.valid() && c.gens[id] == gen
}

func (c *Controller) Ticket(id ID) Ticket {
	return Ticket{owner: c, View: id, Gen: c.Generation(id)}
}

// Valid reports whether t was issued by c for id's latest activation.
func (c *Controller) Valid(t Ticket) bool {
	return t.owner == c && c.Current(t.View, t.Gen)
}
