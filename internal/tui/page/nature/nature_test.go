package nature

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/earth/internal/tui/components/chart"
	"github.com/garrettladley/earth/internal/tui/components/display"
)

func TestRender(t *testing.T) {
	t.Parallel()

	b := display.NewBoard(nil)
	c := chart.NewCharts(nil)
	Render(b, c)

	want := map[string]string{
		FieldStatus:  "STABLE",
		FieldSoil:    "28%",
		FieldFire:    "LOW",
		FieldSpecies: "NORMAL",
	}
	for id, text := range want {
		if got := b.Text(id); got != text {
			t.Errorf("%s = %q, want %q", id, got, text)
		}
	}

	ch := c.Get(ChartBiodiversity)
	if ch == nil {
		t.Fatal("chart not drawn")
	}
	if diff := cmp.Diff(chart.Synthesize(30), ch.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
}
