package game

import (
	"image"
	"math"
	"testing"
)

type rect image.Rectangle

func (r rect) Contains(x, y int) bool { return image.Pt(x, y).In(image.Rectangle(r)) }

var (
	testPanel   = rect(image.Rect(1200, 0, 1500, 700))
	testEndTurn = rect(image.Rect(1220, 636, 1480, 680))
)

func TestClickBackToBackSelectsEachHex(t *testing.T) {
	s := newTestSession(t, nil)

	// центры (0,0,0) и (1,0,-1), два клика подряд без паузы
	if got := s.Click(600, 300, testPanel, testEndTurn); got != ClickHex {
		t.Fatalf("first click = %v, want ClickHex", got)
	}
	x := int(math.Round(600 + 32*math.Sqrt(3)))
	if got := s.Click(x, 300, testPanel, testEndTurn); got != ClickHex {
		t.Fatalf("second click = %v, want ClickHex", got)
	}
	cell, ok := s.Selected()
	if !ok || cell.ID != "1,0,-1" {
		t.Errorf("selection = %q, %v; want 1,0,-1", cell.ID, ok)
	}
}

func TestClickEndTurnTwice(t *testing.T) {
	s := newTestSession(t, nil)
	for i := 0; i < 2; i++ {
		if got := s.Click(1300, 650, testPanel, testEndTurn); got != ClickEndTurn {
			t.Fatalf("click %d = %v, want ClickEndTurn", i+1, got)
		}
	}
	if s.Turn != 3 || s.CurrentPlayer != 1 {
		t.Errorf("turn=%d player=%d, want 3/1", s.Turn, s.CurrentPlayer)
	}
}

func TestClickRouting(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want ClickTarget
	}{
		{"hex", 600, 300, ClickHex},
		{"empty canvas", 5, 5, ClickMissed},
		{"panel body", 1300, 100, ClickPanel},
		{"button", 1250, 650, ClickEndTurn},
	}
	for _, tc := range tests {
		s := newTestSession(t, nil)
		if got := s.Click(tc.x, tc.y, testPanel, testEndTurn); got != tc.want {
			t.Errorf("%s: Click(%d, %d) = %v, want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
		if tc.want != ClickEndTurn && s.Turn != 1 {
			t.Errorf("%s: turn advanced", tc.name)
		}
	}
}

func TestClickPanelShadowsGrid(t *testing.T) {
	s := newTestSession(t, nil)
	// панель поверх канвы: клик в её области не доходит до сетки
	wide := rect(image.Rect(0, 0, 1500, 700))
	if got := s.Click(600, 300, wide, testEndTurn); got != ClickPanel {
		t.Fatalf("Click = %v, want ClickPanel", got)
	}
	if _, ok := s.Selected(); ok {
		t.Error("click on the panel selected a hex")
	}
}
