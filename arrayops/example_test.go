package arrayops_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/hasbyte1/go-array-utils/arrayops"
)

func ExampleForEach() {
	arrayops.ForEach(func(n int) { fmt.Println(n * n) }, 1, 2, 3)
	// Output:
	// 1
	// 4
	// 9
}

func ExampleForEachIndexed() {
	arrayops.ForEachIndexed(func(i int, s string) {
		fmt.Printf("%d=%s\n", i, s)
	}, "a", "b")
	// Output:
	// 0=a
	// 1=b
}

func ExampleFill() {
	fmt.Println(arrayops.Fill(4, "ha"))
	// Output: [ha ha ha ha]
}

func ExampleReplace() {
	items := []string{"red", "green", "blue"}
	old, _ := arrayops.Replace(items, 1, "yellow")
	fmt.Println(old, items)
	// Output: green [red yellow blue]
}

func ExampleReplace_outOfRange() {
	_, err := arrayops.Replace([]int{1, 2, 3}, 7, 0)
	fmt.Println(errors.Is(err, arrayops.ErrIndexOutOfRange))
	// Output: true
}

func ExampleRandomFrom() {
	src := rand.New(rand.NewPCG(1, 2))
	color := arrayops.RandomFrom(src, "red", "green", "blue")
	fmt.Println(arrayops.Contains(color, "red", "green", "blue"))
	// Output: true
}

func ExampleConcat() {
	fmt.Println(arrayops.Concat([]int{1, 2}, []int{3}, []int{4, 5}))
	// Output: [1 2 3 4 5]
}

func ExampleConvert() {
	lengths, _ := arrayops.Convert(func(s string) int { return len(s) }, "go", "gopher")
	fmt.Println(lengths)
	// Output: [2 6]
}

func ExampleConvertMany() {
	upper, _ := arrayops.ConvertMany(strings.ToUpper, []string{"a", "b"}, []string{"c"})
	fmt.Println(upper)
	// Output: [A B C]
}

func ExampleJoin() {
	fmt.Println(arrayops.Join(", ", 1, 2, 3))
	// Output: 1, 2, 3
}

func ExampleJoinInts() {
	fmt.Println(arrayops.JoinInts("-", 10, 20, 30))
	// Output: 10-20-30
}

func ExampleContains() {
	fmt.Println(arrayops.Contains("b", "a", "b", "c"))
	// Output: true
}

func ExampleCountNil() {
	x := 1
	fmt.Println(arrayops.CountNil(&x, nil, nil))
	// Output: 2
}

func ExampleParallelCountNil() {
	items := make([]*int, 10_000)
	fmt.Println(arrayops.ParallelCountNil(items...))
	// Output: 10000
}
