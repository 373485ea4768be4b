// internal/game/input.go
package game

// Region is a clickable screen area, e.g. the side panel or a button.
type Region interface {
	Contains(x, y int) bool
}

// ClickTarget says what a click ended up doing.
type ClickTarget int

const (
	ClickMissed  ClickTarget = iota // мимо сетки и кнопок
	ClickHex                        // выбран гекс
	ClickEndTurn                    // нажата "End Turn"
	ClickPanel                      // панель, но не кнопка
)

// Click routes one mouse press. Presses inside panel go to the UI (endTurn
// ends the turn), everything else is hit-tested against the grid. Every press
// is handled; there is no debounce.
func (s *Session) Click(x, y int, panel, endTurn Region) ClickTarget {
	if panel != nil && panel.Contains(x, y) {
		if endTurn != nil && endTurn.Contains(x, y) {
			s.EndTurn()
			return ClickEndTurn
		}
		return ClickPanel
	}
	if _, ok := s.SelectAt(float64(x), float64(y)); ok {
		return ClickHex
	}
	return ClickMissed
}
