// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-hexnav/internal/config"
	"go-hexnav/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromMenu = true

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	sm := state.NewStateMachine()
	if startFromMenu {
		sm.SetState(state.NewMenuState(sm))
	} else {
		sm.SetState(state.NewSailingState(sm))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Navigator")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
