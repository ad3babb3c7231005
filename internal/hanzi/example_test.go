package hanzi_test

import (
	"fmt"

	"github.com/louisbranch/randomzh/internal/hanzi"
)

func ExampleParseRange() {
	fmt.Println(hanzi.ParseRange("1,3").String())
	fmt.Println(hanzi.ParseRange("1-3") == nil)
	// Output:
	// 1,3
	// true
}

func ExampleSelectCandidates() {
	ds := hanzi.Dataset{
		Levels: hanzi.Table{
			1: []rune("一二人"),
			2: []rune("大天"),
		},
		StrokeCounts: hanzi.Table{
			1: []rune("一"),
			2: []rune("二人"),
			3: []rune("大"),
			4: []rune("天"),
		},
	}
	pool := hanzi.SelectCandidates(ds, nil, &hanzi.Range{Min: 2, Max: 3})
	fmt.Println(string(pool))
	// Output: 二人大
}
