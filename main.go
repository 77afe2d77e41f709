package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"tiltball/config"
	"tiltball/game"
)

func main() {
	app := config.Load()
	g, err := game.NewGame(app)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(int(app.Sim.ScreenWidth), int(app.Sim.ScreenHeight))
	ebiten.SetWindowTitle(app.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(int(app.Sim.StepRate))

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
