package main

import (
	"errors"
	"fmt"
	"io/fs"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/ytget/video-catalog/internal/app"
	"github.com/ytget/video-catalog/internal/catalog"
	"github.com/ytget/video-catalog/internal/config"
	applog "github.com/ytget/video-catalog/internal/log"
	"github.com/ytget/video-catalog/internal/platform"
	"github.com/ytget/video-catalog/internal/playback"
	"github.com/ytget/video-catalog/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.video-catalog"
	AppName = "Video Catalog"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("failed to load .env: %v\n", err)
	}

	myApp := fyneapp.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCatalogTheme())

	settings := config.NewSettings(myApp)
	settings.ApplyEnv()

	applog.Configure(applog.Config{Level: settings.GetLogLevel(), Version: version})
	logger := applog.WithComponent("app")
	logger.Info().Str("source", string(settings.GetCatalogSource())).Msg("starting")

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	player := platform.NewExternalPlayer(nil)
	controller := playback.NewController(player, playback.WithLogger(applog.WithComponent("playback")))

	root := ui.NewRootUI(myWindow, myApp, settings, controller, func() (catalog.Source, error) {
		return app.BuildSource(settings)
	})
	root.Start()

	myWindow.SetOnClosed(func() {
		root.Shutdown()
		player.Close()
		logger.Info().Msg("stopped")
	})

	myWindow.ShowAndRun()
}
