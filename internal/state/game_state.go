// internal/state/game_state.go
package state

import (
	"image"
	"log/slog"

	"hex-mockup/internal/config"
	"hex-mockup/internal/event"
	"hex-mockup/internal/game"
	"hex-mockup/internal/ui"
	"hex-mockup/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры: карта слева, панель справа
type GameState struct {
	sm        *StateMachine
	session   *game.Session
	renderer  *render.HexRenderer
	infoPanel *ui.InfoPanel
	log       *slog.Logger
	cfg       *config.Config
	width     int
	height    int
}

// NewGameState wires the renderer and the side panel to an existing session.
// d must be the dispatcher the session publishes to.
func NewGameState(sm *StateMachine, cfg *config.Config, session *game.Session, d *event.Dispatcher, log *slog.Logger) (*GameState, error) {
	face, err := ui.LoadFace(config.FontSize)
	if err != nil {
		return nil, err
	}
	titleFace, err := ui.LoadFace(config.TitleFontSize)
	if err != nil {
		return nil, err
	}

	width, height, canvasWidth := cfg.CanvasSize(cfg.Window.Width, cfg.Window.Height)
	mapColors := mapColorsFrom(cfg)
	renderer := render.NewHexRenderer(session.Grid, session.Layout, mapColors, canvasWidth, height)

	panelRect := image.Rect(canvasWidth, 0, width, height)
	infoPanel := ui.NewInfoPanel(panelRect, face, titleFace, d, session.TurnInfo())

	return &GameState{
		sm:        sm,
		session:   session,
		renderer:  renderer,
		infoPanel: infoPanel,
		log:       log,
		cfg:       cfg,
		width:     width,
		height:    height,
	}, nil
}

func mapColorsFrom(cfg *config.Config) render.MapColors {
	return render.MapColors{
		Terrain:           cfg.TerrainPalette(),
		UnknownColor:      config.UnknownColor,
		OutlineColor:      config.OutlineColor,
		SelectedColor:     config.SelectedColor,
		FillAlpha:         config.FillAlpha,
		StrokeWidth:       config.StrokeWidth,
		SelectStrokeWidth: config.SelectStrokeWidth,
	}
}

func (g *GameState) Enter() {
	g.log.Debug("game state entered")
}

func (g *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.endTurn()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch g.session.Click(x, y, g.infoPanel, g.infoPanel.EndTurnButton) {
		case game.ClickEndTurn:
			g.infoPanel.EndTurnButton.Press()
		case game.ClickMissed:
			g.log.Debug("click missed the grid", "x", x, "y", y)
		}
	}
	return nil
}

func (g *GameState) endTurn() {
	g.infoPanel.EndTurnButton.Press()
	g.session.EndTurn()
}

// Layout follows the window size: the canvas takes everything left of the
// panel. Hex positions stay fixed, as in the original.
func (g *GameState) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height, canvasWidth := g.cfg.CanvasSize(outsideWidth, outsideHeight)
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		g.renderer.Resize(canvasWidth, height)
		g.infoPanel.SetRect(image.Rect(canvasWidth, 0, width, height))
		g.log.Debug("window resized", "width", width, "height", height)
	}
	return width, height
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.session)
	g.infoPanel.Draw(screen)
}

// Ничего не делаем при выходе
func (g *GameState) Exit() {}
