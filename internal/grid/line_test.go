package grid

import (
	"math/rand"
	"slices"
	"testing"
)

func TestCompactTowardStart(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
	}{
		{
			name:     "simple merge",
			input:    Line{2, 2, 0, 0},
			expected: Line{4, 0, 0, 0},
		},
		{
			name:     "no chained merge",
			input:    Line{2, 0, 2, 2},
			expected: Line{4, 2, 0, 0},
		},
		{
			name:     "merge with trailing tile",
			input:    Line{2, 2, 2, 0},
			expected: Line{4, 2, 0, 0},
		},
		{
			name:     "double merge",
			input:    Line{2, 2, 2, 2},
			expected: Line{4, 4, 0, 0},
		},
		{
			name:     "merged sum is not reconsidered",
			input:    Line{2, 2, 4, 4},
			expected: Line{4, 8, 0, 0},
		},
		{
			name:     "merged sum does not absorb equal neighbour",
			input:    Line{2, 2, 4, 0},
			expected: Line{4, 4, 0, 0},
		},
		{
			name:     "no merge possible",
			input:    Line{2, 4, 8, 16},
			expected: Line{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    Line{0, 0, 2, 2},
			expected: Line{4, 0, 0, 0},
		},
		{
			name:     "slide with multiple gaps",
			input:    Line{2, 0, 0, 2},
			expected: Line{4, 0, 0, 0},
		},
		{
			name:     "empty line",
			input:    Line{0, 0, 0, 0},
			expected: Line{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    Line{0, 4, 0, 0},
			expected: Line{4, 0, 0, 0},
		},
		{
			name:     "longer line",
			input:    Line{8, 8, 0, 8, 4, 4},
			expected: Line{16, 8, 8, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompactTowardStart(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("CompactTowardStart(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCompactTowardEnd(t *testing.T) {
	tests := []struct {
		input    Line
		expected Line
	}{
		{Line{2, 2, 0, 0}, Line{0, 0, 0, 4}},
		{Line{2, 2, 2, 0}, Line{0, 0, 2, 4}},
		{Line{2, 2, 0, 2}, Line{0, 0, 2, 4}},
		{Line{4, 4, 2, 2}, Line{0, 0, 8, 4}},
		{Line{0, 0, 0, 0}, Line{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		result := CompactTowardEnd(tt.input)
		if !slices.Equal(result, tt.expected) {
			t.Errorf("CompactTowardEnd(%v) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestCompactDoesNotMutateInput(t *testing.T) {
	input := Line{2, 2, 0, 4}
	original := slices.Clone(input)

	CompactTowardStart(input)
	CompactTowardEnd(input)

	if !slices.Equal(input, original) {
		t.Errorf("input mutated: got %v, want %v", input, original)
	}
}

func TestCompactIdempotentOnSettledLine(t *testing.T) {
	settled := []Line{
		{2, 4, 8, 16},
		{4, 2, 0, 0},
		{32, 0, 0, 0},
		{0, 0, 0, 0},
	}

	for _, line := range settled {
		if got := CompactTowardStart(line); !slices.Equal(got, line) {
			t.Errorf("CompactTowardStart(%v) = %v, want unchanged", line, got)
		}
	}
}

// randomLine builds a line of small powers of two and blanks.
func randomLine(rng *rand.Rand, n int) Line {
	values := []int{0, 0, 2, 4, 8, 16}
	line := make(Line, n)
	for i := range line {
		line[i] = values[rng.Intn(len(values))]
	}
	return line
}

func TestCompactProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for i := 0; i < 500; i++ {
		line := randomLine(rng, 2+rng.Intn(5))

		start := CompactTowardStart(line)
		if len(start) != len(line) {
			t.Fatalf("length changed: %v -> %v", line, start)
		}

		// Sum is conserved.
		if sumLine(start) != sumLine(line) {
			t.Errorf("sum changed: %v (%d) -> %v (%d)", line, sumLine(line), start, sumLine(start))
		}

		// No zero precedes a non-zero value.
		seenZero := false
		for _, v := range start {
			if v == 0 {
				seenZero = true
			} else if seenZero {
				t.Errorf("CompactTowardStart(%v) = %v leaves a gap", line, start)
				break
			}
		}

		// Mirror symmetry.
		end := CompactTowardEnd(line)
		mirrored := reverse(CompactTowardStart(reverse(line)))
		if !slices.Equal(end, mirrored) {
			t.Errorf("CompactTowardEnd(%v) = %v, want %v", line, end, mirrored)
		}
	}
}

func sumLine(line Line) int {
	total := 0
	for _, v := range line {
		total += v
	}
	return total
}
