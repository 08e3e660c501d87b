package bfs

// levelSizesNoSwap and levelSizesSwap hold the precomputed 2-log of orbit
// level sizes, indexed [N][depth-2] (the first entry of each row is the
// hint for depth=2, i.e. externally-reported Depth 1). They are sizing
// hints for levelScale, not hard bounds: Expander surfaces
// ErrCapacity if a table ends up undersized for the actual level.
//
// N=8's rows are guesses past a certain depth in the source these were
// measured from — there was no larger N computed to confirm them exactly.
var levelSizesNoSwap = [9][]byte{
	{},                                                          // 0
	{0},                                                         // 1
	{0, 0, 0, 0},                                                // 2
	{0, 3, 4, 4, 3, 0, 0},                                       // 3
	{0, 3, 5, 7, 8, 9, 8, 5, 0, 0},                               // 4
	{0, 3, 5, 8, 11, 13, 14, 15, 15, 13, 8, 0, 0},                 // 5
	{0, 3, 6, 8, 11, 14, 17, 19, 22, 23, 24, 23, 20, 11, 0, 0},    // 6
	{0, 3, 6, 8, 11, 15, 18, 21, 24, 27, 30, 32, 33, 34, 33, 29, 17, 0, 0}, // 7
	{0, 3, 6, 8, 11, 15, 18, 22, 25, 29, 32, 35, // guess from here on
		37, 38, 40, 41, 40, 38, 36, 34, 0, 0}, // 8
}

var levelSizesSwap = [9][]byte{
	{},                                              // 0
	{0},                                             // 1
	{0, 0, 0, 0},                                    // 2
	{0, 3, 4, 4, 3, 0, 0},                            // 3
	{0, 3, 5, 5, 3, 0, 0, 0, 0, 0},                    // 4
	{0, 3, 5, 7, 9, 9, 7, 3, 0, 0, 0, 0, 0},            // 5
	{0, 3, 5, 8, 10, 13, 14, 15, 13, 10, 3, 0, 0, 0, 0, 0}, // 6
	{0, 3, 5, 8, 11, 14, 16, 19, 21, 22, 22, 20, 13, 2, 0, 0, 0, 0, 0}, // 7
	{0, 3, 5, 8, 11, 14, 17, 20, 23, 26, 28, 30, 31, 30, 28, 21, 3, 0, 0, 0, 0, 0}, // 8
}

// levelSizeHint returns the levelSizes table's entry for this n/swap/depth,
// or 0 if depth falls outside the table (either because n's row ends early,
// or because depth is past where the original ever needed one — by then the
// search has typically already terminated on orbit==0).
func levelSizeHint(n int, swap bool, depth int) int {
	table := levelSizesNoSwap[n][:]
	if swap {
		table = levelSizesSwap[n][:]
	}

	idx := depth - 2
	if idx < 0 || idx >= len(table) {
		return 0
	}

	return int(table[idx])
}

// levelScale returns the clamped table scale for a frontier at this depth:
// clamp(hint+extra, floor, max).
func levelScale(n int, swap bool, depth, extra int, floor, max uint) uint {
	scale := levelSizeHint(n, swap, depth) + extra

	if scale < int(floor) {
		return floor
	}

	if uint(scale) > max {
		return max
	}

	return uint(scale)
}
