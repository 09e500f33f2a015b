// ChessBotAI - a chess game with a minimax opponent, built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/amiit04/ChessBotAI/internal/ui"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessBotAI")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
