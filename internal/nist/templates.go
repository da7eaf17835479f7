package nist

// aperiodicTemplates holds, for each template length m in [2,8], the
// published NIST aperiodic templates of that length (spec §4.7, C6):
// bit strings in which no proper prefix equals the suffix of the same
// length, so two occurrences can never overlap. Indexed
// aperiodicTemplates[m-2].
var aperiodicTemplates = [][][]int8{
	{ // m = 2
		{0, 1}, {1, 0},
	},
	{ // m = 3
		{0, 0, 1}, {0, 1, 1}, {1, 0, 0}, {1, 1, 0},
	},
	{ // m = 4
		{0, 0, 0, 1}, {0, 0, 1, 1}, {0, 1, 1, 1}, {1, 0, 0, 0}, {1, 1, 0, 0}, {1, 1, 1, 0},
	},
	{ // m = 5
		{0, 0, 0, 0, 1}, {0, 0, 0, 1, 1}, {0, 0, 1, 0, 1}, {0, 1, 0, 1, 1}, {0, 0, 1, 1, 1},
		{0, 1, 1, 1, 1}, {1, 1, 1, 0, 0}, {1, 1, 0, 1, 0}, {1, 0, 1, 0, 0}, {1, 1, 0, 0, 0},
		{1, 0, 0, 0, 0}, {1, 1, 1, 1, 0},
	},
	{ // m = 6
		{0, 0, 0, 0, 0, 1}, {0, 0, 0, 0, 1, 1}, {0, 0, 0, 1, 0, 1}, {0, 0, 0, 1, 1, 1},
		{0, 0, 1, 0, 1, 1}, {0, 0, 1, 1, 0, 1}, {0, 0, 1, 1, 1, 1}, {0, 1, 0, 0, 1, 1},
		{0, 1, 0, 1, 1, 1}, {0, 1, 1, 1, 1, 1}, {1, 0, 0, 0, 0, 0}, {1, 0, 1, 0, 0, 0},
		{1, 0, 1, 1, 0, 0}, {1, 1, 0, 0, 0, 0}, {1, 1, 0, 0, 1, 0}, {1, 1, 0, 1, 0, 0},
		{1, 1, 1, 0, 0, 0}, {1, 1, 1, 0, 1, 0}, {1, 1, 1, 1, 0, 0}, {1, 1, 1, 1, 1, 0},
	},
	{ // m = 7
		{0, 0, 0, 0, 0, 0, 1}, {0, 0, 0, 0, 0, 1, 1}, {0, 0, 0, 0, 1, 0, 1}, {0, 0, 0, 0, 1, 1, 1},
		{0, 0, 0, 1, 0, 0, 1}, {0, 0, 0, 1, 0, 1, 1}, {0, 0, 0, 1, 1, 0, 1}, {0, 0, 0, 1, 1, 1, 1},
		{0, 0, 1, 0, 0, 1, 1}, {0, 0, 1, 0, 1, 0, 1}, {0, 0, 1, 0, 1, 1, 1}, {0, 0, 1, 1, 0, 1, 1},
		{0, 0, 1, 1, 1, 0, 1}, {0, 0, 1, 1, 1, 1, 1}, {0, 1, 0, 0, 0, 1, 1}, {0, 1, 0, 0, 1, 1, 1},
		{0, 1, 0, 1, 0, 1, 1}, {0, 1, 0, 1, 1, 1, 1}, {0, 1, 1, 0, 1, 1, 1}, {0, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0}, {1, 0, 0, 1, 0, 0, 0}, {1, 0, 1, 0, 0, 0, 0}, {1, 0, 1, 0, 1, 0, 0},
		{1, 0, 1, 1, 0, 0, 0}, {1, 0, 1, 1, 1, 0, 0}, {1, 1, 0, 0, 0, 0, 0}, {1, 1, 0, 0, 0, 1, 0},
		{1, 1, 0, 0, 1, 0, 0}, {1, 1, 0, 1, 0, 0, 0}, {1, 1, 0, 1, 0, 1, 0}, {1, 1, 0, 1, 1, 0, 0},
		{1, 1, 1, 0, 0, 0, 0}, {1, 1, 1, 0, 0, 1, 0}, {1, 1, 1, 0, 1, 0, 0}, {1, 1, 1, 0, 1, 1, 0},
		{1, 1, 1, 1, 0, 0, 0}, {1, 1, 1, 1, 0, 1, 0}, {1, 1, 1, 1, 1, 0, 0}, {1, 1, 1, 1, 1, 1, 0},
	},
	{ // m = 8
		{0, 0, 0, 0, 0, 0, 0, 1}, {0, 0, 0, 0, 0, 0, 1, 1}, {0, 0, 0, 0, 0, 1, 0, 1}, {0, 0, 0, 0, 0, 1, 1, 1},
		{0, 0, 0, 0, 1, 0, 0, 1}, {0, 0, 0, 0, 1, 0, 1, 1}, {0, 0, 0, 0, 1, 1, 0, 1}, {0, 0, 0, 0, 1, 1, 1, 1},
		{0, 0, 0, 1, 0, 0, 1, 1}, {0, 0, 0, 1, 0, 1, 0, 1}, {0, 0, 0, 1, 0, 1, 1, 1}, {0, 0, 0, 1, 1, 0, 0, 1},
		{0, 0, 0, 1, 1, 0, 1, 1}, {0, 0, 0, 1, 1, 1, 0, 1}, {0, 0, 0, 1, 1, 1, 1, 1}, {0, 0, 1, 0, 0, 0, 1, 1},
		{0, 0, 1, 0, 0, 1, 0, 1}, {0, 0, 1, 0, 0, 1, 1, 1}, {0, 0, 1, 0, 1, 0, 1, 1}, {0, 0, 1, 0, 1, 1, 0, 1},
		{0, 0, 1, 0, 1, 1, 1, 1}, {0, 0, 1, 1, 0, 1, 0, 1}, {0, 0, 1, 1, 0, 1, 1, 1}, {0, 0, 1, 1, 1, 0, 1, 1},
		{0, 0, 1, 1, 1, 1, 0, 1}, {0, 0, 1, 1, 1, 1, 1, 1}, {0, 1, 0, 0, 0, 0, 1, 1}, {0, 1, 0, 0, 0, 1, 1, 1},
		{0, 1, 0, 0, 1, 0, 1, 1}, {0, 1, 0, 0, 1, 1, 1, 1}, {0, 1, 0, 1, 0, 0, 1, 1}, {0, 1, 0, 1, 0, 1, 1, 1},
		{0, 1, 0, 1, 1, 0, 1, 1}, {0, 1, 0, 1, 1, 1, 1, 1}, {0, 1, 1, 0, 0, 1, 1, 1}, {0, 1, 1, 0, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1}, {1, 0, 0, 0, 0, 0, 0, 0}, {1, 0, 0, 1, 0, 0, 0, 0}, {1, 0, 0, 1, 1, 0, 0, 0},
		{1, 0, 1, 0, 0, 0, 0, 0}, {1, 0, 1, 0, 0, 1, 0, 0}, {1, 0, 1, 0, 1, 0, 0, 0}, {1, 0, 1, 0, 1, 1, 0, 0},
		{1, 0, 1, 1, 0, 0, 0, 0}, {1, 0, 1, 1, 0, 1, 0, 0}, {1, 0, 1, 1, 1, 0, 0, 0}, {1, 0, 1, 1, 1, 1, 0, 0},
		{1, 1, 0, 0, 0, 0, 0, 0}, {1, 1, 0, 0, 0, 0, 1, 0}, {1, 1, 0, 0, 0, 1, 0, 0}, {1, 1, 0, 0, 1, 0, 0, 0},
		{1, 1, 0, 0, 1, 0, 1, 0}, {1, 1, 0, 1, 0, 0, 0, 0}, {1, 1, 0, 1, 0, 0, 1, 0}, {1, 1, 0, 1, 0, 1, 0, 0},
		{1, 1, 0, 1, 1, 0, 0, 0}, {1, 1, 0, 1, 1, 0, 1, 0}, {1, 1, 0, 1, 1, 1, 0, 0}, {1, 1, 1, 0, 0, 0, 0, 0},
		{1, 1, 1, 0, 0, 0, 1, 0}, {1, 1, 1, 0, 0, 1, 0, 0}, {1, 1, 1, 0, 0, 1, 1, 0}, {1, 1, 1, 0, 1, 0, 0, 0},
		{1, 1, 1, 0, 1, 0, 1, 0}, {1, 1, 1, 0, 1, 1, 0, 0}, {1, 1, 1, 1, 0, 0, 0, 0}, {1, 1, 1, 1, 0, 0, 1, 0},
		{1, 1, 1, 1, 0, 1, 0, 0}, {1, 1, 1, 1, 0, 1, 1, 0}, {1, 1, 1, 1, 1, 0, 0, 0}, {1, 1, 1, 1, 1, 0, 1, 0},
		{1, 1, 1, 1, 1, 1, 0, 0}, {1, 1, 1, 1, 1, 1, 1, 0},
	},
}

// templatesForLength returns the aperiodic template set for length m,
// or nil if m is outside [2,8].
func templatesForLength(m int) [][]int8 {
	if m < 2 || m > 8 {
		return nil
	}
	return aperiodicTemplates[m-2]
}
