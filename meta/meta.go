// meta/meta.go
package meta

// BOARD_SIZE defines the side length of the standard board.
const BOARD_SIZE = 8

// SEARCH_DEPTH defines the default plies searched per move.
const SEARCH_DEPTH = 4

// NUM_GAMES defines the number of games in a series.
const NUM_GAMES = 10

// SEED defines the default seed of random players.
const SEED = 1

// PRUNING_MAX_DEPTH defines the deepest search compared against minimax.
const PRUNING_MAX_DEPTH = 4

// RESULTS_DIR defines where experiment CSV files are stored.
const RESULTS_DIR = "results"
