package display

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/earth/internal/tui/theme"
)

func TestBoard_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	b := NewBoard(nil)
	if !b.Add("stat-power", "POWER GRID", "--", theme.ToneSafe) {
		t.Fatal("first Add() = false")
	}
	b.Patch("stat-power", "LOW", theme.ToneSafe)

	if b.Add("stat-power", "POWER GRID", "--", theme.ToneSafe) {
		t.Error("second Add() = true")
	}

	want := []Field{{ID: "stat-power", Label: "POWER GRID", Text: "LOW", Tone: theme.ToneSafe}}
	if diff := cmp.Diff(want, b.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestBoard_PatchMissingIsNoop(t *testing.T) {
	t.Parallel()

	b := NewBoard(nil)
	b.Add("hero-score", "", "--", theme.ToneDefault)
	before := b.Snapshot()

	if b.Patch("hero-gone", "55", theme.ToneDanger) {
		t.Error("Patch() on missing field = true")
	}
	if b.PatchText("hero-gone", "55") {
		t.Error("PatchText() on missing field = true")
	}
	if b.Has("hero-gone") {
		t.Error("Patch() created the missing field")
	}
	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
}

func TestBoard_PatchTextKeepsTone(t *testing.T) {
	t.Parallel()

	b := NewBoard(nil)
	b.Add("val-aqi", "AQI", "Good (42)", theme.ToneSafe)
	b.PatchText("val-aqi", "Moderate (80)")

	got, ok := b.Get("val-aqi")
	if !ok {
		t.Fatal("Get() ok = false")
	}
	if got.Text != "Moderate (80)" || got.Tone != theme.ToneSafe {
		t.Errorf("Get() = %+v, want text Moderate (80) with safe tone", got)
	}
	if b.Text("missing") != "" {
		t.Error("Text() on missing field returned text")
	}
}

func TestBoard_PatchMissingLogsMissingTarget(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := NewBoard(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	b.PatchText("stat-ghost", "LOW")

	out := buf.String()
	for _, want := range []string{
		`"field":"stat-ghost"`,
		`"error":"display field stat-ghost not found"`,
		`"error_kind":"missing_target"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s:\n%s", want, out)
		}
	}
}
