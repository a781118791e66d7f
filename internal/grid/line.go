package grid

// CompactTowardStart slides the non-zero tiles of line toward index 0 and
// merges equal neighbours. Merging runs lowest index first and a merged cell
// never merges again in the same call, so [2 0 2 2] becomes [4 2 0 0].
func CompactTowardStart(line Line) Line {
	result := make(Line, len(line))
	writePos := 0
	merged := false

	for _, v := range line {
		if v < 0 {
			panic("grid: negative tile in line")
		}
		if v == 0 {
			continue
		}

		if writePos > 0 && !merged && result[writePos-1] == v {
			result[writePos-1] += v
			merged = true
			continue
		}

		result[writePos] = v
		writePos++
		merged = false
	}

	return result
}

// CompactTowardEnd is the mirror of CompactTowardStart.
func CompactTowardEnd(line Line) Line {
	return reverse(CompactTowardStart(reverse(line)))
}

// reverse returns a reversed copy of line.
func reverse(line Line) Line {
	n := len(line)
	result := make(Line, n)
	for i, v := range line {
		result[n-1-i] = v
	}
	return result
}
