// meta/meta.go
package meta

import "time"

// SIMULATIONS defines the number of playouts in one estimate batch.
const SIMULATIONS = 500

// MAX_MOVES defines the half-move cap after which a playout counts as a draw.
const MAX_MOVES = 200

// YIELD_EVERY defines how many playouts the worker runs between pauses.
const YIELD_EVERY = 10

// YIELD_PAUSE defines how long the worker sleeps at each pause.
const YIELD_PAUSE = 10 * time.Millisecond
