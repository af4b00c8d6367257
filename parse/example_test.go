package parse_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/parse"
)

// ExampleNumsSigned pulls every integer out of a noisy instruction line.
func ExampleNumsSigned() {
	line := "turn rect 3x7, then shift col -2 by 11"

	fmt.Println(parse.NumsSigned[int](line))

	// Output:
	// [3 7 -2 11]
}
