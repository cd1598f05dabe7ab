package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
	AndroidCommand = "am"
	AndroidView    = "android.intent.action.VIEW"
)

// Android activities tried when the generic intent is not handled
var AndroidPlayers = []string{
	"org.videolan.vlc/.gui.video.VideoPlayerActivity",
	"com.mxtech.videoplayer.ad/.ActivityScreen",
}

// Opener hands a URI to an external application
type Opener func(ctx context.Context, uri string) error

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// OpenURI opens the URI with the default system media handler
func OpenURI(ctx context.Context, uri string) error {
	if uri == "" {
		return fmt.Errorf("uri is empty")
	}

	if IsAndroid() {
		return openURIAndroid(ctx, uri)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.CommandContext(ctx, OpenCommand, uri).Run()
	case OSWindows:
		return exec.CommandContext(ctx, CmdCommand, WindowsCmdFlag, StartCommand, "", uri).Run()
	case OSLinux:
		return exec.CommandContext(ctx, XDGOpenCommand, uri).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openURIAndroid tries a typed VIEW intent, then an untyped one, then known players
func openURIAndroid(ctx context.Context, uri string) error {
	attempts := [][]string{
		{"start", "-a", AndroidView, "-d", uri, "-t", "video/*"},
		{"start", "-a", AndroidView, "-d", uri},
	}
	for _, activity := range AndroidPlayers {
		attempts = append(attempts, []string{"start", "-n", activity, "-d", uri})
	}

	var err error
	for _, args := range attempts {
		if err = exec.CommandContext(ctx, AndroidCommand, args...).Run(); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return fmt.Errorf("failed to open %s: no suitable player found: %w", uri, err)
}
