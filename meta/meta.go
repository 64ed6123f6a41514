// meta/meta.go
package meta

// BOARD_SIZE defines the number of rows and columns of the grid.
const BOARD_SIZE = 25

// DEFAULT_DEPTH defines the starting search depth.
const DEFAULT_DEPTH = 2

// DEFAULT_THRESHOLD defines the node expansion threshold, in millions.
const DEFAULT_THRESHOLD = 100

// HISTORY_SIZE defines how many recent boards are kept for deadlock detection.
const HISTORY_SIZE = 10

// FIRST_DEEPEN_AT and SECOND_DEEPEN_AT define the combined piece counts that deepen the search.
const FIRST_DEEPEN_AT = 10
const SECOND_DEEPEN_AT = 5

// DEADLOCK_DEPTH is the depth above which a deadlock makes the search shallower.
const DEADLOCK_DEPTH = 4

// DEADLOCK_BOOST is added to the depth when a deadlock happens at or below DEADLOCK_DEPTH.
const DEADLOCK_BOOST = 3
