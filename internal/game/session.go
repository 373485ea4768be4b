// internal/game/session.go
package game

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"hex-mockup/internal/event"
	"hex-mockup/pkg/hexmap"
)

const noSelection = -1

// Session is the mutable game state: turn counter, current player and the
// selected cell. The grid itself is never modified.
type Session struct {
	ID            uuid.UUID
	Grid          *hexmap.Grid
	Layout        hexmap.Layout
	Turn          int
	CurrentPlayer int

	selected   int
	dispatcher *event.Dispatcher
	log        *slog.Logger
}

// NewSession starts at turn 1 with player 1 to move and nothing selected.
// dispatcher may be nil.
func NewSession(grid *hexmap.Grid, layout hexmap.Layout, dispatcher *event.Dispatcher, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	id := uuid.New()
	return &Session{
		ID:            id,
		Grid:          grid,
		Layout:        layout,
		Turn:          1,
		CurrentPlayer: 1,
		selected:      noSelection,
		dispatcher:    dispatcher,
		log:           log.With("session", id.String()),
	}
}

// SelectAt hit-tests a screen point against the grid in stored order. On a hit
// the cell becomes the selection; a miss leaves the previous selection alone.
func (s *Session) SelectAt(px, py float64) (hexmap.Cell, bool) {
	i, ok := s.Layout.HitTest(s.Grid.Cells, px, py)
	if !ok {
		return hexmap.Cell{}, false
	}
	s.selected = i
	cell := s.Grid.Cell(i)
	s.log.Debug("hex selected", "id", cell.ID, "terrain", cell.Terrain.String())
	s.dispatcher.Dispatch(event.Event{Type: event.HexSelected, Data: cell})
	return cell, true
}

// Selected returns the selected cell, if any.
func (s *Session) Selected() (hexmap.Cell, bool) {
	if s.selected == noSelection {
		return hexmap.Cell{}, false
	}
	return s.Grid.Cell(s.selected), true
}

// IsSelected reports whether the i-th grid cell is the selection.
func (s *Session) IsSelected(i int) bool {
	return s.selected != noSelection && s.selected == i
}

// ClearSelection drops the current selection.
func (s *Session) ClearSelection() {
	s.selected = noSelection
}

// TurnInfo returns the current turn and whose move it is.
func (s *Session) TurnInfo() event.TurnInfo {
	return event.TurnInfo{Turn: s.Turn, Player: s.CurrentPlayer}
}

// EndTurn advances the turn counter and passes the move to the other player.
func (s *Session) EndTurn() event.TurnInfo {
	s.Turn++
	if s.CurrentPlayer == 1 {
		s.CurrentPlayer = 2
	} else {
		s.CurrentPlayer = 1
	}
	info := s.TurnInfo()
	s.log.Info("turn ended", "turn", humanize.Ordinal(s.Turn), "player", s.CurrentPlayer)
	s.dispatcher.Dispatch(event.Event{Type: event.TurnEnded, Data: info})
	return info
}

// LogSummary writes the grid size and terrain breakdown.
func (s *Session) LogSummary() {
	s.log.Info("grid generated",
		"width", s.Grid.Width,
		"height", s.Grid.Height,
		"cells", humanize.Comma(int64(s.Grid.Len())),
	)
	counts := s.Grid.TerrainCounts()
	for _, t := range hexmap.Terrains {
		s.log.Info("terrain", "type", t.String(), "count", counts[t])
	}
}
