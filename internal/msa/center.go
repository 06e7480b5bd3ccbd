package msa

// SelectCenter picks the center sequence for the star merge: the
// index whose row sum is maximal, meaning the sequence that aligns
// best against all others in total. Ties resolve to the lowest
// index, which keeps the choice deterministic.
func SelectCenter(m *ScoreMatrix) int {
	best := 0
	bestSum := m.RowSum(0)

	for i := 1; i < m.Size(); i++ {
		if sum := m.RowSum(i); sum > bestSum {
			best = i
			bestSum = sum
		}
	}

	return best
}
