// Package app wires the sampler, renderer, chime and settings into an
// ebiten game. The host game loop drives everything: Update applies at most
// one tick transition per wall second, Draw reads the stored timestamp.
package app

import (
	"errors"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/vancha/binary-clock/internal/chime"
	"github.com/vancha/binary-clock/internal/clock"
	"github.com/vancha/binary-clock/internal/config"
	"github.com/vancha/binary-clock/internal/render"
)

// App is the application controller. The stored timestamp is written only
// by tick and read only by Draw, both on the game-loop goroutine.
type App struct {
	cfg     *config.Config
	cfgPath string
	clk     clock.Clocker
	chimer  chime.Chimer
	log     *slog.Logger

	now      time.Time
	mode     render.Mode
	active   color.Color
	inactive color.Color

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// New builds the controller from validated settings.
func New(cfg *config.Config, cfgPath string, clk clock.Clocker, chimer chime.Chimer, log *slog.Logger) (*App, error) {
	active, inactive, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	mode, err := render.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:      cfg,
		cfgPath:  cfgPath,
		clk:      clk,
		chimer:   chimer,
		log:      log,
		now:      clock.Sample(clk, cfg.UTCOffsetSeconds),
		mode:     mode,
		active:   active,
		inactive: inactive,
		prevKey:  map[ebiten.Key]bool{},
	}, nil
}

// Update handles input and advances the clock when the wall second changes.
func (a *App) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !a.prevKey[k]
		a.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		a.toggleMode()
	}
	if justPressed(ebiten.KeyC) {
		a.pickColor("Active circle color", &a.active, &a.cfg.ActiveColor)
	}
	if justPressed(ebiten.KeyI) {
		a.pickColor("Inactive circle color", &a.inactive, &a.cfg.InactiveColor)
	}
	if justPressed(ebiten.KeyM) {
		a.cfg.Chime = !a.cfg.Chime
		a.log.Info("chime toggled", "enabled", a.cfg.Chime)
	}
	if justPressed(ebiten.KeyS) {
		a.saveSettings()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if now := clock.Sample(a.clk, a.cfg.UTCOffsetSeconds); !sameSecond(now, a.now) {
		a.tick(now)
	}
	return nil
}

// tick is the sole writer of the stored timestamp.
func (a *App) tick(now time.Time) {
	prev := a.now
	a.now = now
	a.log.Debug("tick", "time", now.Format("15:04:05"))
	if a.cfg.Chime && now.Hour() != prev.Hour() {
		a.chimer.Chime()
	}
}

// Draw renders the current grid. Geometry is recomputed from scratch every
// frame; nothing is cached between frames.
func (a *App) Draw(screen *ebiten.Image) {
	bounds := render.Bounds{
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
	}
	render.Draw(ebitenCanvas{screen}, render.Grid(a.mode, a.now, bounds), a.active, a.inactive)
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.WindowWidth, a.cfg.WindowHeight
}

func (a *App) toggleMode() {
	if a.mode == render.ModeBCD {
		a.mode = render.ModeBinary
	} else {
		a.mode = render.ModeBCD
	}
	a.cfg.Mode = a.mode.String()
	a.log.Info("display mode changed", "mode", a.cfg.Mode)
}

// pickColor opens a color chooser and stores the selection both on the
// running app and in the settings. A canceled dialog changes nothing.
func (a *App) pickColor(title string, dst *color.Color, cfgField *string) {
	picked, err := zenity.SelectColor(zenity.Title(title), zenity.Color(*dst))
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			a.log.Warn("color chooser failed", "err", err)
		}
		return
	}
	*dst = picked
	*cfgField = config.FormatHexColor(picked)
	a.log.Info("color changed", "setting", title, "color", *cfgField)
}

func (a *App) saveSettings() {
	if err := a.cfg.Save(a.cfgPath); err != nil {
		a.log.Error("save settings", "err", err)
		return
	}
	a.log.Info("settings saved", "path", a.cfgPath)
}

func sameSecond(a, b time.Time) bool {
	return a.Truncate(time.Second).Equal(b.Truncate(time.Second))
}
