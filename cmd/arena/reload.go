package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/milk9111/elemental/prefabs"
	"github.com/milk9111/elemental/progression"
)

// reload carries whatever was rebuilt from a changed file. Only one field
// is set.
type reload struct {
	arena *prefabs.ArenaSpec
	curve progression.Curve
}

// watchPrefabs rebuilds arenas and level curves as their files change and
// hands them to the game loop until ctx is done.
func watchPrefabs(ctx context.Context, dirs []string, logger *slog.Logger, out chan<- reload) error {
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		<-ctx.Done()
		return w.Close()
	})
	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				logger.Warn("prefab watcher", "err", err)
			case change, ok := <-w.Events:
				if !ok {
					return nil
				}
				r, ok := rebuild(change, logger)
				if !ok {
					continue
				}
				select {
				case out <- r:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return eg.Wait()
}

func rebuild(change prefabs.Change, logger *slog.Logger) (reload, bool) {
	name := filepath.Base(change.Path)
	switch {
	case change.Kind == prefabs.ChangeSpec && name == prefabs.ArenaFile:
		arena, err := prefabs.LoadArenaSpec()
		if err != nil {
			logger.Warn("reload arena", "err", err)
			return reload{}, false
		}
		logger.Info("arena reloaded", "name", arena.Name)
		return reload{arena: arena}, true
	case change.Kind == prefabs.ChangeScript && strings.EqualFold(name, curveScript):
		src, err := prefabs.LoadScript(name)
		if err != nil {
			logger.Warn("reload progression script", "err", err)
			return reload{}, false
		}
		curve, err := progression.NewScriptCurve(src, logger)
		if err != nil {
			logger.Warn("reload progression script", "err", err)
			return reload{}, false
		}
		logger.Info("progression script reloaded")
		return reload{curve: curve}, true
	}
	return reload{}, false
}
