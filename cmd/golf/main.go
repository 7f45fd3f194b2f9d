package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/golfball/internal/application/game"
	"github.com/younwookim/golfball/internal/application/scene/loading"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	stageFlag := flag.String("stage", "demo", "Stage to play (stages/<name>.tmx or .json)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the final ball state")
	flag.Parse()

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")

	if *replayFlag != "" {
		res, err := VerifyReplay(context.Background(), loader, *replayFlag)
		if err != nil {
			log.Fatalf("Failed to verify replay: %v", err)
		}
		fmt.Println(res)
		return
	}

	physics, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	display := physics.Display

	g := game.New(loading.New(loader, *stageFlag, *recordFlag), display.ScreenWidth, display.ScreenHeight, display.Framerate)
	g.HandleWindowClose()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Golf Ball")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
