package grading

// Distance computes the Levenshtein distance between a and b: the minimum
// number of single-rune insertions, deletions and substitutions (unit cost
// each) transforming one into the other. Full DP table, O(len(a)*len(b)).
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	table := make([][]int, len(br)+1)
	for i := range table {
		table[i] = make([]int, len(ar)+1)
		table[i][0] = i
	}
	for j := range table[0] {
		table[0][j] = j
	}

	for i := 1; i <= len(br); i++ {
		for j := 1; j <= len(ar); j++ {
			if br[i-1] == ar[j-1] {
				table[i][j] = table[i-1][j-1]
				continue
			}
			table[i][j] = min3(
				table[i-1][j]+1,   // deletion
				table[i][j-1]+1,   // insertion
				table[i-1][j-1]+1, // substitution
			)
		}
	}

	return table[len(br)][len(ar)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
