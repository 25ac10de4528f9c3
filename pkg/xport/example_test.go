package xport_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/netsem/pkg/xport"
)

func ExampleParse() {
	p, err := xport.Parse("8080")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p, xport.Classify(p))

	_, err = xport.Parse("65536")
	fmt.Println(errors.Is(err, xport.ErrOutOfRange))
	// Output:
	// 8080 user
	// true
}

func ExampleClassify() {
	for _, n := range []int{22, 8080, 60000} {
		p, _ := xport.FromInt(n)
		fmt.Println(p, "→", xport.Classify(p))
	}
	// Output:
	// 22 → system
	// 8080 → user
	// 60000 → dynamic
}
