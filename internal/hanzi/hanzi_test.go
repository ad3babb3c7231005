package hanzi

import "testing"

// fixture is a small dataset with a repeated character in level 1.
func fixture() Dataset {
	return Dataset{
		Levels: Table{
			1: []rune("一二人人"),
			2: []rune("大天"),
			3: []rune("木"),
		},
		StrokeCounts: Table{
			1: []rune("一"),
			2: []rune("二人"),
			3: []rune("大"),
			4: []rune("天木"),
		},
	}
}

func intPtr(v int) *int {
	return &v
}

func assertDistinct(t *testing.T, chars []rune) {
	t.Helper()
	seen := make(map[rune]struct{}, len(chars))
	for _, c := range chars {
		if _, ok := seen[c]; ok {
			t.Fatalf("expected distinct characters, %q repeats in %q", c, string(chars))
		}
		seen[c] = struct{}{}
	}
}

func assertMembers(t *testing.T, chars []rune, allowed []rune) {
	t.Helper()
	set := make(map[rune]struct{}, len(allowed))
	for _, c := range allowed {
		set[c] = struct{}{}
	}
	for _, c := range chars {
		if _, ok := set[c]; !ok {
			t.Fatalf("unexpected character %q, allowed %q", c, string(allowed))
		}
	}
}
