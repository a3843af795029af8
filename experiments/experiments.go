package experiments

import (
	"context"
	"fmt"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"

	"github.com/rs/zerolog/log"
)

// Series plays a number of games between two agents, alternating who plays black.
type Series struct {
	Name   string
	Size   int
	Games  int
	Agents [2]metrics.AgentConfig
	OutDir string // Results are only written when set
}

// Tally counts series wins per AgentConfig.ID.
type Tally struct {
	Wins     map[int]int
	Draws    int
	Forfeits int
}

func RunSeries(ctx context.Context, s Series) ([]metrics.GameRecord, Tally, error) {
	tally := Tally{Wins: map[int]int{}}
	records := make([]metrics.GameRecord, 0, s.Games)

	log.Info().Msgf("starting %s series of %d games between agent1=%+v and agent2=%+v...", s.Name, s.Games, s.Agents[0], s.Agents[1])

	for i := 0; i < s.Games; i++ {
		// Alternate the starting agent
		black, white := s.Agents[0], s.Agents[1]
		if i%2 == 1 {
			black, white = white, black
		}

		log.Info().Msgf("starting game %d of %d...", i+1, s.Games)

		result, err := runGame(ctx, s.Size, black, white, uint64(i))
		if err != nil {
			return records, tally, fmt.Errorf("game %d: %w", i+1, err)
		}

		records = append(records, metrics.GameRecord{
			ID:         i + 1,
			Black:      black.ID,
			White:      white.ID,
			GameMetric: result.Game,
		})
		switch result.Winner {
		case game.Black:
			tally.Wins[black.ID]++
		case game.White:
			tally.Wins[white.ID]++
		default:
			tally.Draws++
		}
		if result.Forfeit {
			tally.Forfeits++
		}

		log.Info().Msgf("completed game %d with winner: %s", i+1, result.WinnerName())
	}

	log.Info().Msgf("completed %s series: agent%d %d wins, agent%d %d wins, %d draws",
		s.Name, s.Agents[0].ID, tally.Wins[s.Agents[0].ID], s.Agents[1].ID, tally.Wins[s.Agents[1].ID], tally.Draws)

	if s.OutDir == "" {
		return records, tally, nil
	}

	writer, err := metrics.NewWriter(s.OutDir, s.Name)
	if err != nil {
		return records, tally, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(s.Agents[:])
	if err != nil {
		return records, tally, fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(records)
	if err != nil {
		return records, tally, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())

	return records, tally, nil
}

// runGame executes a single game between two agents
func runGame(ctx context.Context, size int, black, white metrics.AgentConfig, round uint64) (engine.Result, error) {
	blackPlayer, err := createPlayer(black, game.Black, round)
	if err != nil {
		return engine.Result{}, err
	}
	whitePlayer, err := createPlayer(white, game.White, round)
	if err != nil {
		return engine.Result{}, err
	}

	m, err := engine.NewMatch(size, blackPlayer, whitePlayer)
	if err != nil {
		return engine.Result{}, err
	}
	return m.Run(ctx)
}

// createPlayer offsets the seed by the round so random agents vary between games.
func createPlayer(config metrics.AgentConfig, me game.Cell, round uint64) (player.Player, error) {
	return player.New(config.Player, player.Config{
		Me:       me,
		Opponent: me.Opponent(),
		Depth:    config.Depth,
		Seed:     config.Seed + round,
		Metrics:  true,
	})
}
