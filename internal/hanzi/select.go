package hanzi

// SelectCandidates builds the candidate pool for the given filters.
//
// Level entries inside levelRange are flattened in ascending key order; a
// nil levelRange takes every entry. With a strokeRange, a pool entry is kept
// when its character appears in at least one stroke-count entry inside the
// range. That is a membership test: multiplicity from the level table is
// preserved. The result may be empty.
func SelectCandidates(ds Dataset, levelRange, strokeRange *Range) []rune {
	var pool []rune
	for _, level := range ds.Levels.Keys() {
		if levelRange != nil && !levelRange.Contains(level) {
			continue
		}
		pool = append(pool, ds.Levels[level]...)
	}
	if strokeRange == nil || len(pool) == 0 {
		return pool
	}

	allowed := make(map[rune]struct{})
	for strokes, chars := range ds.StrokeCounts {
		if !strokeRange.Contains(strokes) {
			continue
		}
		for _, c := range chars {
			allowed[c] = struct{}{}
		}
	}

	filtered := pool[:0]
	for _, c := range pool {
		if _, ok := allowed[c]; ok {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
