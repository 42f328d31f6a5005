package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/prefabs"
	"github.com/milk9111/elemental/progression"
	"github.com/milk9111/elemental/save"
	"github.com/milk9111/elemental/sim"
)

func main() {
	allAbilities := flag.Bool("ab", false, "start with all abilities unlocked")
	debug := flag.Bool("debug", false, "enable debug logging")
	headless := flag.Bool("headless", false, "run without a window and log events")
	ticks := flag.Int("ticks", 600, "ticks to run in headless mode")
	savePath := flag.String("save", save.DefaultFile, "save file path")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory watched for prefab overrides")
	watch := flag.Bool("watch", true, "reload prefabs and scripts when they change")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	prefabs.Dir = *prefabDir

	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		logger.Error("load arena", "err", err)
		os.Exit(1)
	}

	s, err := sim.New(sim.Options{
		Logger: logger,
		Curve:  loadCurve(logger),
		Arena:  arena,
	})
	if err != nil {
		logger.Error("create simulation", "err", err)
		os.Exit(1)
	}

	store := save.NewStore(*savePath)
	if _, err := store.Load(s.Player()); err != nil && !errors.Is(err, save.ErrNoSave) {
		logger.Warn("load save", "path", store.Path(), "err", err)
	}
	if *allAbilities {
		for _, a := range ability.All() {
			s.Player().Unlock(a.ID)
		}
	}

	if *headless {
		runHeadless(s, *ticks, logger)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)

	reloads := make(chan reload, 4)
	if *watch {
		dirs := []string{*prefabDir, filepath.Join(*prefabDir, "scripts")}
		eg.Go(func() error {
			return watchPrefabs(ctx, dirs, logger, reloads)
		})
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("elemental arena")

	game := NewGame(s, arena, store, reloads, logger)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", "err", err)
	}

	stop()
	if err := eg.Wait(); err != nil {
		logger.Warn("prefab watcher stopped", "err", err)
	}
}

// loadCurve prefers the scripted level curve and falls back to the built-in
// one when the script is missing or broken.
func loadCurve(logger *slog.Logger) progression.Curve {
	src, err := prefabs.LoadScript(curveScript)
	if err != nil {
		logger.Warn("load progression script", "err", err)
		return progression.DefaultCurve{}
	}
	curve, err := progression.NewScriptCurve(src, logger)
	if err != nil {
		logger.Warn("compile progression script", "err", err)
		return progression.DefaultCurve{}
	}
	return curve
}

const curveScript = "progression.tengo"
