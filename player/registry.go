package player

import (
	"errors"
	"fmt"
	"reversi/game"
	"reversi/searcher"
	"sync"

	"golang.org/x/exp/slices"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Config carries everything a Factory may need to build a player for one side.
type Config struct {
	Me       game.Cell
	Opponent game.Cell
	Depth    int
	Seed     uint64
	Metrics  bool
}

type Factory func(cfg Config) Player

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"random": func(cfg Config) Player {
			return NewRandom(cfg.Me, cfg.Seed)
		},
		"alphabeta": func(cfg Config) Player {
			return NewAlphaBeta(cfg.Me, cfg.Opponent, cfg.Depth, searchOptions(cfg)...)
		},
		"minimax": func(cfg Config) Player {
			return NewMinimax(cfg.Me, cfg.Opponent, cfg.Depth, searchOptions(cfg)...)
		},
	}
)

func searchOptions(cfg Config) []searcher.Option {
	if cfg.Metrics {
		return []searcher.Option{searcher.WithMetrics()}
	}
	return nil
}

// Register makes a player available under name, replacing any previous entry.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[name] = factory
}

// New builds the player registered under name.
func New(name string, cfg Config) (Player, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPlayer, name, Names())
	}
	return factory(cfg), nil
}

// Names lists the registered players in alphabetical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
