// core/rips/reduce.go
package rips

// column is a GF(2) chain: a sorted set of filtration indices. Addition is
// symmetric difference.
type column []int

func (c column) low() int {
	if len(c) == 0 {
		return -1
	}
	return c[len(c)-1]
}

// xor returns c + o over GF(2), both inputs sorted.
func (c column) xor(o column) column {
	out := make(column, 0, len(c)+len(o))
	i, j := 0, 0
	for i < len(c) && j < len(o) {
		switch {
		case c[i] < o[j]:
			out = append(out, c[i])
			i++
		case c[i] > o[j]:
			out = append(out, o[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, c[i:]...)
	out = append(out, o[j:]...)
	return out
}

// pairing is the output of the standard persistence reduction: for each
// paired creator, the killer index plus the generating data captured at the
// moment of pairing.
type pairing struct {
	birth      int    // creator simplex index
	death      int    // killer simplex index
	deathCycle column // reduced boundary of the killer: the cycle that dies
	deathChain column // V-column of the killer: the chain bounding that cycle
	birthChain column // V-column of the creator: the cycle alive from birth
}

// reduce runs boundary-matrix column reduction with the V matrix tracked
// (R = D·V), yielding pairings with generators. Unpaired creators (infinite
// persistence) are dropped, per the engine contract.
func reduce(boundary []column) []pairing {
	n := len(boundary)
	r := make([]column, n)
	v := make([]column, n)
	pivot := make(map[int]int, n) // low index -> column owning it
	birthChain := make(map[int]column, n)

	var pairs []pairing
	for j := 0; j < n; j++ {
		r[j] = boundary[j]
		v[j] = column{j}
		for len(r[j]) > 0 {
			k, ok := pivot[r[j].low()]
			if !ok {
				break
			}
			r[j] = r[j].xor(r[k])
			v[j] = v[j].xor(v[k])
		}
		if len(r[j]) == 0 {
			// Creator: a new cycle is born with j; remember its generator.
			birthChain[j] = v[j]
			continue
		}
		low := r[j].low()
		pivot[low] = j
		pairs = append(pairs, pairing{
			birth:      low,
			death:      j,
			deathCycle: r[j],
			deathChain: v[j],
			birthChain: birthChain[low],
		})
	}
	return pairs
}
