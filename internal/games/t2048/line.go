package t2048

// Toward is the end of a line that tiles travel to.
type Toward int

const (
	TowardStart Toward = iota // index 0 (left for rows, top for columns)
	TowardEnd                 // index len-1 (right for rows, bottom for columns)
)

// ShiftZeroes packs the nonzero values of line against the given end,
// keeping their relative order, and moves the zeros to the other end.
// The line is modified in place.
func ShiftZeroes(line []int, toward Toward) {
	n := len(line)

	if toward == TowardStart {
		writePos := 0
		for i := range n {
			if line[i] != 0 {
				line[writePos] = line[i]
				writePos++
			}
		}
		for i := writePos; i < n; i++ {
			line[i] = 0
		}
		return
	}

	writePos := n - 1
	for i := n - 1; i >= 0; i-- {
		if line[i] != 0 {
			line[writePos] = line[i]
			writePos--
		}
	}
	for i := writePos; i >= 0; i-- {
		line[i] = 0
	}
}

// Combine runs one merge pass over line in the direction of travel.
// Each pair of adjacent equal tiles merges into the tile nearer the
// destination end; a tile takes part in at most one merge per pass.
// Returns the total value produced by merges and the number of merges.
func Combine(line []int, toward Toward) (gained, merges int) {
	n := len(line)

	if toward == TowardStart {
		for i := 0; i < n-1; {
			if line[i] != 0 && line[i] == line[i+1] {
				line[i] *= 2
				line[i+1] = 0
				gained += line[i]
				merges++
				i += 2
				continue
			}
			i++
		}
		return gained, merges
	}

	for i := n - 1; i > 0; {
		if line[i] != 0 && line[i] == line[i-1] {
			line[i] *= 2
			line[i-1] = 0
			gained += line[i]
			merges++
			i -= 2
			continue
		}
		i--
	}
	return gained, merges
}

// slideLine compacts, merges and re-compacts a line toward one end.
func slideLine(line []int, toward Toward) (gained, merges int) {
	ShiftZeroes(line, toward)
	gained, merges = Combine(line, toward)
	ShiftZeroes(line, toward)
	return gained, merges
}
