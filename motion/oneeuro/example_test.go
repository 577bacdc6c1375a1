package oneeuro_test

import (
	"fmt"

	"github.com/cwbudde/algo-motion/motion/oneeuro"
)

func ExampleNew() {
	f, err := oneeuro.New(60,
		oneeuro.WithMinCutoff(1),
		oneeuro.WithBeta(0.5),
		oneeuro.WithDerivativeCutoff(1),
	)
	if err != nil {
		panic(err)
	}

	const dt = 1.0 / 60

	// The first sample passes through unchanged.
	fmt.Printf("%.2f\n", f.Filter(1.0, dt))

	// A held input converges to the raw value.
	out := 0.0
	for range 300 {
		out = f.Filter(2.0, dt)
	}
	fmt.Printf("%.2f\n", out)
	// Output:
	// 1.00
	// 2.00
}
