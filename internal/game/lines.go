package game

// ScanLines calls fn with every row, every column, both main diagonals and
// every shorter diagonal that can still hold TargetLen cells. The slice passed
// to fn is reused between calls and must not be retained.
//
// For an N×N board this yields 2N + 2 + 4(N-TargetLen) lines.
func (b *Board) ScanLines(fn func(line []Cell)) {
	var buf [BoardSize]Cell
	const n = BoardSize

	for i := 0; i < n; i++ {
		fn(b[i][:])
		for j := 0; j < n; j++ {
			buf[j] = b[j][i]
		}
		fn(buf[:n])
	}

	for j := 0; j < n; j++ {
		buf[j] = b[j][j]
	}
	fn(buf[:n])
	for j := 0; j < n; j++ {
		buf[j] = b[j][n-1-j]
	}
	fn(buf[:n])

	for i := 1; i < n-TargetLen+1; i++ {
		size := n - i
		// \ above the main diagonal
		for j := 0; j < size; j++ {
			buf[j] = b[j][i+j]
		}
		fn(buf[:size])
		// \ below
		for j := 0; j < size; j++ {
			buf[j] = b[i+j][j]
		}
		fn(buf[:size])
		// / above the anti-diagonal
		for j := 0; j < size; j++ {
			buf[j] = b[n-1-i-j][j]
		}
		fn(buf[:size])
		// / below
		for j := 0; j < size; j++ {
			buf[j] = b[n-1-j][i+j]
		}
		fn(buf[:size])
	}
}

// Lines returns copies of every line visited by ScanLines.
func (b *Board) Lines() [][]Cell {
	var lines [][]Cell
	b.ScanLines(func(line []Cell) {
		lines = append(lines, append([]Cell(nil), line...))
	})
	return lines
}
