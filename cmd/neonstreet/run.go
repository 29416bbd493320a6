package main

import (
	"fmt"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/neonstreet"
	"github.com/spf13/cobra"
)

type runFlags struct {
	width, height   int
	showFPS         bool
	debug           bool
	noMusic         bool
	script          string
	screenshotDir   string
	avatar          string
	exitAfterScript bool
}

func runCmd(gf *globalFlags) *cobra.Command {
	var rf runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the street in a window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWindow(gf, rf)
		},
	}

	f := cmd.Flags()
	f.IntVar(&rf.width, "width", 1280, "window width")
	f.IntVar(&rf.height, "height", 720, "window height")
	f.BoolVar(&rf.showFPS, "fps", false, "show FPS and TPS")
	f.BoolVar(&rf.debug, "debug", false, "log per-frame timings at debug level")
	f.BoolVar(&rf.noMusic, "no-music", false, "never open the audio device")
	f.StringVar(&rf.script, "script", "", "JSON test script to replay")
	f.StringVar(&rf.screenshotDir, "screenshots", "screenshots", "directory for script screenshots")
	f.StringVar(&rf.avatar, "avatar", "", "PNG used for the avatar instead of the drawn figure")
	f.BoolVar(&rf.exitAfterScript, "exit-after-script", false, "close the window once the script finishes")
	return cmd
}

func runWindow(gf *globalFlags, rf runFlags) error {
	cfg, err := loadConfig(gf.configPath)
	if err != nil {
		return err
	}
	scene, err := neonstreet.NewScene(cfg, neonstreet.Viewport{Width: float64(rf.width), Height: float64(rf.height)})
	if err != nil {
		return err
	}
	defer scene.Close()

	scene.ScreenshotDir = rf.screenshotDir
	scene.SetDebugMode(rf.debug)

	deco := neonstreet.NewPlaceholderDecorator()
	if rf.avatar != "" {
		img, _, err := ebitenutil.NewImageFromFile(rf.avatar)
		if err != nil {
			neonstreet.Logger().Warn("avatar image unavailable, drawing placeholder", "path", rf.avatar, "err", err)
		} else {
			deco.AvatarImage = img
		}
	}
	scene.SetDecorator(deco)

	if !rf.noMusic {
		scene.SetAudio(neonstreet.OpenMusic(cfg.Music.Path, cfg.Music.Volume))
		if cfg.Music.Autoplay {
			scene.Bridge().ToggleMusic()
		}
	}

	var runner *neonstreet.TestRunner
	if rf.script != "" {
		data, err := os.ReadFile(rf.script)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		runner, err = neonstreet.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
	}

	ov := newOverlay(scene.Bridge(), scene.StreetLayout().Viewport)
	scene.Router().Blocker = ov.blocks
	// The last step may have queued a screenshot, so the window stays up
	// for one more frame after the script finishes.
	var finished bool
	scene.SetUpdateFunc(func() error {
		if runner != nil && rf.exitAfterScript && runner.Done() {
			if finished {
				return ebiten.Termination
			}
			finished = true
		}
		return ov.update()
	})
	scene.SetDrawFunc(ov.draw)

	return neonstreet.Run(scene, neonstreet.RunConfig{
		Title:     "Neon Street",
		Width:     rf.width,
		Height:    rf.height,
		ShowFPS:   rf.showFPS,
		Resizable: true,
	})
}
