package life

// NaiveUniverse is a dense, unmemoized Game of Life board used as a
// correctness oracle for Universe in tests. Coordinates are plain
// 0-based array indices, unlike Universe's origin-centered scheme.
type NaiveUniverse struct {
	n, m  int
	cells [][]bool
}

// NewNaiveUniverse returns a NaiveUniverse over an n x m board seeded
// with the given live cells. cells must have n rows of m entries each.
func NewNaiveUniverse(n, m int, cells [][]bool) *NaiveUniverse {
	return &NaiveUniverse{n: n, m: m, cells: cells}
}

// Get reports whether the cell at (i, j) is alive. Coordinates outside
// the board are always dead.
func (u *NaiveUniverse) Get(i, j int) bool {
	if i < 0 || i >= u.n || j < 0 || j >= u.m {
		return false
	}
	return u.cells[i][j]
}

// Round computes, in place, the next generation under the B3/S23
// rule: a dead cell with exactly three live neighbors becomes alive,
// a live cell with two or three live neighbors stays alive, and every
// other cell dies or stays dead.
func (u *NaiveUniverse) Round() {
	next := make([][]bool, u.n)
	for i := range next {
		next[i] = make([]bool, u.m)
	}
	alive := func(i, j int) bool {
		return i >= 0 && i < u.n && j >= 0 && j < u.m && u.cells[i][j]
	}
	for i := 0; i < u.n; i++ {
		for j := 0; j < u.m; j++ {
			c := 0
			if alive(i-1, j-1) {
				c++
			}
			if alive(i-1, j) {
				c++
			}
			if alive(i, j-1) {
				c++
			}
			if alive(i-1, j+1) {
				c++
			}
			if alive(i, j+1) {
				c++
			}
			if alive(i+1, j) {
				c++
			}
			if alive(i+1, j+1) {
				c++
			}
			if alive(i+1, j-1) {
				c++
			}
			next[i][j] = c == 3 || (c == 2 && u.cells[i][j])
		}
	}
	u.cells = next
}

// Rounds computes, in place, the n-th next generation.
func (u *NaiveUniverse) Rounds(n int) {
	for i := 0; i < n; i++ {
		u.Round()
	}
}
