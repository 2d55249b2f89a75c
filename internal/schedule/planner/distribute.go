package planner

import (
	"math"
	"sort"
)

// distribute splits n sessions over days using linear urgency weights
// (day i weighs i+1), so the count never decreases toward the deadline.
// Rounding uses the largest remainder, ties going to the later day.
func distribute(n, days int) []int {
	out := make([]int, days)
	if n <= 0 || days <= 0 {
		return out
	}

	totalWeight := float64(days*(days+1)) / 2
	type rem struct {
		day  int
		frac float64
	}
	rems := make([]rem, days)
	assigned := 0
	for i := 0; i < days; i++ {
		quota := float64(n) * float64(i+1) / totalWeight
		whole := math.Floor(quota)
		out[i] = int(whole)
		assigned += out[i]
		rems[i] = rem{day: i, frac: quota - whole}
	}

	sort.SliceStable(rems, func(a, b int) bool {
		if rems[a].frac == rems[b].frac {
			return rems[a].day > rems[b].day
		}
		return rems[a].frac > rems[b].frac
	})
	for i := 0; assigned < n; i++ {
		out[rems[i%days].day]++
		assigned++
	}
	return out
}
