// meta/meta.go
package meta

// MAX_MOVES bounds a single run loop; a game that is still undecided after
// this many moves is stopped without a winner.
const MAX_MOVES = 1000

// GO_ROUTINES defines the number of games played at once.
const GO_ROUTINES = 4

// GAMES is the default number of playouts per simulation.
const GAMES = 100

// SEED is the default base seed of the random controllers.
const SEED = 1

// SETUP_PATH is the default scenario file.
const SETUP_PATH = "setups/demo.yaml"

// RESULTS_DIR is the default directory for experiment output.
const RESULTS_DIR = "experiments/results"
