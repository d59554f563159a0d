// Package display holds the leaf values the pages render: named fields
// with text and a tone.
package display

import (
	"log/slog"

	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/xerrors"
	"github.com/garrettladley/earth/internal/xslog"
)

type Field struct {
	ID    string
	Label string
	Text  string
	Tone  theme.Tone
}

// Board is the set of fields currently on screen. Fields appear when a
// view renders its static structure and live until the session restarts.
type Board struct {
	fields map[string]*Field
	order  []string
	logger *slog.Logger
}

func NewBoard(logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	return &Board{
		fields: make(map[string]*Field),
		logger: logger,
	}
}

// Add creates a field. Adding an existing id changes nothing and reports
// false.
func (b *Board) Add(id, label, text string, tone theme.Tone) bool {
	if _, ok := b.fields[id]; ok {
		return false
	}
	b.fields[id] = &Field{ID: id, Label: label, Text: text, Tone: tone}
	b.order = append(b.order, id)
	return true
}

// Patch sets a field's text and tone. A missing field is left missing and
// the call reports false.
func (b *Board) Patch(id, text string, tone theme.Tone) bool {
	f, ok := b.fields[id]
	if !ok {
		b.missing(id)
		return false
	}
	f.Text = text
	f.Tone = tone
	return true
}

// PatchText is Patch that keeps the field's tone.
func (b *Board) PatchText(id, text string) bool {
	f, ok := b.fields[id]
	if !ok {
		b.missing(id)
		return false
	}
	f.Text = text
	return true
}

func (b *Board) missing(id string) {
	err := xerrors.MissingTarget(xerrors.WithMessage("display field " + id + " not found"))
	b.logger.Debug("display field missing",
		xslog.Field(id),
		xslog.Error(err),
		xslog.ErrorKind(err.Kind),
	)
}

func (b *Board) Get(id string) (Field, bool) {
	f, ok := b.fields[id]
	if !ok {
		return Field{}, false
	}
	return *f, true
}

// Text returns the field's text, or "" when it does not exist.
func (b *Board) Text(id string) string {
	f, _ := b.Get(id)
	return f.Text
}

func (b *Board) Has(id string) bool {
	_, ok := b.fields[id]
	return ok
}

func (b *Board) Len() int {
	return len(b.order)
}

// Snapshot copies every field in creation order.
func (b *Board) Snapshot() []Field {
	out := make([]Field, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.fields[id])
	}
	return out
}
