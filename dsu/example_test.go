package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/disjoint/dsu"
)

// ExampleStore shows the basic merge/query cycle on four labels.
func ExampleStore() {
	s := dsu.New[string]()
	for _, x := range []string{"A", "B", "C", "D"} {
		s.Add(x)
	}

	fmt.Println(s.Merge("A", "B"), s.Merge("C", "D"))
	fmt.Println(s.IsConnected("A", "C"))
	fmt.Println(s.Merge("B", "C"), s.IsConnected("A", "D"))
	fmt.Println(s.Len(), s.Count())
	// Output:
	// true true
	// false
	// true true
	// 4 1
}

// ExampleStore_Groups lists the classes in a deterministic order.
func ExampleStore_Groups() {
	s := dsu.New[int]()
	for i := 1; i <= 6; i++ {
		s.Add(i)
	}
	s.Merge(2, 4)
	s.Merge(4, 6)
	s.Merge(1, 5)

	fmt.Println(s.Groups())
	fmt.Println(s.Sizes())
	// Output:
	// [[1 5] [2 4 6] [3]]
	// [3 2 1]
}
