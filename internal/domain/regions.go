package domain

// RegionsFromStrings builds a region grid from compact rows like "1122",
// mapping '1'-'9' to 1-9 and 'a'-'z' to 10-35. Unknown runes map to 0, which
// the region validation rejects. Handy for fixtures and definition tooling.
func RegionsFromStrings(rows []string) [][]int {
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = make([]int, len(row))
		for j, r := range row {
			switch {
			case r >= '1' && r <= '9':
				out[i][j] = int(r - '0')
			case r >= 'a' && r <= 'z':
				out[i][j] = int(r-'a') + 10
			}
		}
	}
	return out
}
