package linkcut_test

import (
	"fmt"

	"github.com/zyedidia/linkcut"
	"github.com/zyedidia/linkcut/pathagg"
)

func ExampleTree_Link() {
	tr := linkcut.New[float64](pathagg.Sum[float64]{})
	a := tr.MakeTree(1)
	b := tr.MakeTree(2)

	fmt.Println(tr.Connected(a, b))
	tr.Link(a, b)
	fmt.Println(tr.Connected(a, b))
	// Output:
	// false
	// true
}

func ExampleTree_Path() {
	tr := linkcut.New[float64](pathagg.Max[float64]{})
	ids := tr.ExtendForest([]float64{9, 1, 8})
	a, b, c := ids[0], ids[1], ids[2]

	tr.Link(b, a)
	tr.Link(c, b)

	got := tr.Path(c, a)
	fmt.Println(got.Weight, got.ID == a)
	// Output:
	// 9 true
}

func ExampleTree_Cut() {
	tr := linkcut.New[float64](pathagg.Sum[float64]{})
	a := tr.MakeTree(0)
	b := tr.MakeTree(0)

	tr.Link(a, b)
	fmt.Println(tr.Cut(a, b))
	fmt.Println(tr.Cut(a, b))
	// Output:
	// true
	// false
}
