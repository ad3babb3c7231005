package hanzi

import "math/rand/v2"

// Sample shuffles a copy of pool and draws count characters from it.
//
// With allowDuplicates, count characters are drawn independently with
// replacement; an empty pool yields an empty result whatever count is.
// Without duplicates, shuffled characters are taken in order, skipping any
// already taken, so the result is pairwise distinct and is capped at the
// number of distinct characters in the pool.
//
// A nil rng is replaced by a randomly seeded generator. The input pool is
// not modified.
func Sample(rng *rand.Rand, pool []rune, count int, allowDuplicates bool) []rune {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	shuffled := append([]rune(nil), pool...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count <= 0 || len(shuffled) == 0 {
		return []rune{}
	}

	if allowDuplicates {
		result := make([]rune, count)
		for i := range result {
			result[i] = shuffled[rng.IntN(len(shuffled))]
		}
		return result
	}

	result := make([]rune, 0, min(count, len(shuffled)))
	taken := make(map[rune]struct{}, cap(result))
	for _, c := range shuffled {
		if len(result) == count {
			break
		}
		if _, dup := taken[c]; dup {
			continue
		}
		taken[c] = struct{}{}
		result = append(result, c)
	}
	return result
}
