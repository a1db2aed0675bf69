package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/rg/internal/application/game"
	"github.com/younwookim/rg/internal/application/replay"
	"github.com/younwookim/rg/internal/infrastructure/config"
)

const windowScale = 3

// App implements ebiten.Game: polls keys into an Intent, steps the session
// with the measured frame delta and blits the renderer's pixel buffer.
type App struct {
	session *game.Session
	screen  *ebiten.Image
	last    time.Time

	recorder *replay.Recorder
	recordTo string

	cfg  *config.GameConfig
	seed int64
}

// NewApp creates the front-end around a fresh session.
func NewApp(cfg *config.GameConfig, seed int64, recordTo string) (*App, error) {
	session, err := game.New(cfg, seed)
	if err != nil {
		return nil, err
	}

	w, h := session.FrameSize()
	app := &App{
		session:  session,
		screen:   ebiten.NewImage(w, h),
		last:     time.Now(),
		recordTo: recordTo,
		cfg:      cfg,
		seed:     seed,
	}
	if recordTo != "" {
		app.recorder = replay.NewRecorder(seed, 1.0/60.0)
	}
	return app, nil
}

// pollIntent maps held keys to the frame's intent.
func pollIntent() game.Intent {
	var in game.Intent
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Forward = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Forward = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Turn = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Turn = -1
	}
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	return in
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.last).Seconds()
	a.last = now

	in := pollIntent()
	a.session.Tick(in, dt)
	if a.recorder != nil {
		a.recorder.Record(a.session, in)
	}

	if !a.session.PlayerAlive() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		session, err := game.New(a.cfg, a.seed+int64(a.session.Level()))
		if err != nil {
			return err
		}
		a.session = session
	}
	if a.session.PlayerAlive() && a.session.EnemiesLeft() == 0 {
		a.session.NextLevel()
	}

	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.screen.WritePixels(a.session.Frame())
	screen.DrawImage(a.screen, nil)

	msg := fmt.Sprintf("level %d  enemies %d", a.session.Level(), a.session.EnemiesLeft())
	if !a.session.PlayerAlive() {
		msg = "you died - enter to restart"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.session.FrameSize()
}

func main() {
	var (
		configDir  = flag.String("config", "", "config directory (default: embedded)")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "simulation seed")
		record     = flag.String("record", "", "record the run to this file")
		verifyFile = flag.String("verify", "", "verify a recorded run and exit")
	)
	flag.Parse()

	loader := config.NewDefaultLoader()
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatal(err)
	}

	if *verifyFile != "" {
		data, err := replay.Load(*verifyFile)
		if err != nil {
			log.Fatal(err)
		}
		if err := replay.Verify(data, cfg); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("run %s reproduced over %d frames\n", *verifyFile, len(data.Frames))
		return
	}

	app, err := NewApp(cfg, *seed, *record)
	if err != nil {
		log.Fatal(err)
	}

	w, h := app.session.FrameSize()
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle("rg")

	runErr := ebiten.RunGame(app)

	if app.recorder != nil {
		if err := app.recorder.Save(app.recordTo); err != nil {
			log.Printf("failed to save recording: %v", err)
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
