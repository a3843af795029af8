// Command reversi plays headless reversi matches between registered players
// and runs the search experiments.
package main

import (
	"context"
	"fmt"
	"os"
	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/player"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: error loading .env file: %v\n", err)
	}

	cmd := &cli.Command{
		Name:  "reversi",
		Usage: "play reversi matches between search and baseline players",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log every ply with the board",
				Sources: cli.EnvVars("REVERSI_DEBUG"),
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			playCommand(),
			seriesCommand(),
			pruningCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("reversi failed")
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cmd.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return ctx, nil
}

func sizeFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "size",
		Usage:   "board side length, even and at least 2",
		Value:   meta.BOARD_SIZE,
		Sources: cli.EnvVars("REVERSI_SIZE"),
	}
}

// agentFlags declares the player, depth and seed flags of one side.
func agentFlags(side, defaultPlayer string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    side,
			Usage:   fmt.Sprintf("%s player (%s)", side, strings.Join(player.Names(), ", ")),
			Value:   defaultPlayer,
			Sources: cli.EnvVars("REVERSI_" + strings.ToUpper(side)),
		},
		&cli.IntFlag{
			Name:    side + "-depth",
			Usage:   "search depth for " + side,
			Value:   meta.SEARCH_DEPTH,
			Sources: cli.EnvVars("REVERSI_" + strings.ToUpper(side) + "_DEPTH"),
		},
		&cli.IntFlag{
			Name:    side + "-seed",
			Usage:   "random seed for " + side,
			Value:   meta.SEED,
			Sources: cli.EnvVars("REVERSI_" + strings.ToUpper(side) + "_SEED"),
		},
	}
}

func agentConfig(cmd *cli.Command, id int, side string) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:     id,
		Player: cmd.String(side),
		Depth:  int(cmd.Int(side + "-depth")),
		Seed:   uint64(cmd.Int(side + "-seed")),
	}
}

func playCommand() *cli.Command {
	flags := []cli.Flag{
		sizeFlag(),
		&cli.BoolFlag{
			Name:  "show",
			Usage: "print the board after every ply",
		},
	}
	flags = append(flags, agentFlags("black", "alphabeta")...)
	flags = append(flags, agentFlags("white", "random")...)

	return &cli.Command{
		Name:  "play",
		Usage: "play one match",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			black, err := newPlayer(agentConfig(cmd, 1, "black"), game.Black)
			if err != nil {
				return err
			}
			white, err := newPlayer(agentConfig(cmd, 2, "white"), game.White)
			if err != nil {
				return err
			}

			var options []engine.Option
			if cmd.Bool("show") {
				options = append(options, engine.WithPlyHook(func(p engine.Ply) {
					fmt.Printf("Player %d plays %s\n%s\n", p.Color, p.Move, p.Board)
				}))
			}

			m, err := engine.NewMatch(int(cmd.Int("size")), black, white, options...)
			if err != nil {
				return err
			}
			result, err := m.Run(ctx)
			if err != nil {
				return err
			}

			printResult(result)
			return nil
		},
	}
}

func newPlayer(config metrics.AgentConfig, me game.Cell) (player.Player, error) {
	return player.New(config.Player, player.Config{
		Me:       me,
		Opponent: me.Opponent(),
		Depth:    config.Depth,
		Seed:     config.Seed,
	})
}

func printResult(result engine.Result) {
	fmt.Println()
	fmt.Println("-----------------------------")
	fmt.Printf("Final score black:white [%d:%d]\n", result.Game.BlackStones, result.Game.WhiteStones)
	if result.Forfeit {
		fmt.Printf("Forfeit: %s\n", result.Reason)
	}
	if result.Winner == game.Empty {
		fmt.Println("Draw")
	} else {
		fmt.Printf("Player %d (%s) wins!\n", result.Winner, result.Winner)
	}
	fmt.Println("-----------------------------")
}

func seriesCommand() *cli.Command {
	flags := []cli.Flag{
		sizeFlag(),
		&cli.IntFlag{
			Name:    "games",
			Usage:   "number of games, colors alternate between games",
			Value:   meta.NUM_GAMES,
			Sources: cli.EnvVars("REVERSI_GAMES"),
		},
		&cli.StringFlag{
			Name:    "out",
			Usage:   "directory for CSV results, empty to skip",
			Value:   meta.RESULTS_DIR,
			Sources: cli.EnvVars("REVERSI_RESULTS_DIR"),
		},
	}
	flags = append(flags, agentFlags("first", "alphabeta")...)
	flags = append(flags, agentFlags("second", "random")...)

	return &cli.Command{
		Name:  "series",
		Usage: "play a series of matches between two agents",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := experiments.Series{
				Name:  "series",
				Size:  int(cmd.Int("size")),
				Games: int(cmd.Int("games")),
				Agents: [2]metrics.AgentConfig{
					agentConfig(cmd, 1, "first"),
					agentConfig(cmd, 2, "second"),
				},
				OutDir: cmd.String("out"),
			}
			_, tally, err := experiments.RunSeries(ctx, s)
			if err != nil {
				return err
			}

			fmt.Printf("%s wins: %d, %s wins: %d, draws: %d, forfeits: %d\n",
				s.Agents[0].Player, tally.Wins[1], s.Agents[1].Player, tally.Wins[2], tally.Draws, tally.Forfeits)
			return nil
		},
	}
}

func pruningCommand() *cli.Command {
	return &cli.Command{
		Name:  "pruning",
		Usage: "check alpha-beta against minimax on sampled positions and compare node counts",
		Flags: []cli.Flag{
			sizeFlag(),
			&cli.IntFlag{Name: "games", Usage: "self-play games to sample positions from", Value: 2},
			&cli.IntFlag{Name: "every", Usage: "sample one position every this many plies", Value: 8},
			&cli.IntFlag{Name: "depth", Usage: "deepest search compared", Value: meta.PRUNING_MAX_DEPTH},
			&cli.IntFlag{Name: "seed", Usage: "self-play seed", Value: meta.SEED},
			&cli.StringFlag{Name: "out", Usage: "directory for CSV results, empty to skip", Value: meta.RESULTS_DIR},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			records, err := experiments.RunPruningExperiment(ctx, experiments.Pruning{
				Size:     int(cmd.Int("size")),
				Games:    int(cmd.Int("games")),
				Every:    int(cmd.Int("every")),
				MaxDepth: int(cmd.Int("depth")),
				Seed:     uint64(cmd.Int("seed")),
				OutDir:   cmd.String("out"),
			})
			if err != nil {
				return err
			}

			var pruned, full int
			for _, record := range records {
				pruned += record.AlphaBetaNodes
				full += record.MinimaxNodes
			}
			fmt.Printf("%d searches agree; alpha-beta visited %d nodes, minimax %d\n", len(records), pruned, full)
			return nil
		},
	}
}
