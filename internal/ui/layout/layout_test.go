package layout

import (
	"strings"
	"testing"
)

func TestRenderHeader(t *testing.T) {
	wide := RenderHeader("Training Calendar", "Pre-Season", "2026-02-02", 120)
	for _, want := range []string{"Drillplan", "Training Calendar", "Pre-Season", "2026-02-02"} {
		if !strings.Contains(wide, want) {
			t.Errorf("header missing %q", want)
		}
	}

	narrow := RenderHeader("Training Calendar", "Pre-Season", "2026-02-02", 90)
	if strings.Contains(narrow, "2026-02-02") {
		t.Error("expected the date to be dropped on a narrow terminal")
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) {
		t.Error("expected sizes below the minimum to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected the minimum size to fit")
	}
}
