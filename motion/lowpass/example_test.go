package lowpass_test

import (
	"fmt"

	"github.com/cwbudde/algo-motion/motion/lowpass"
)

func ExampleNew() {
	f, err := lowpass.New(lowpass.WithWeight(0.5))
	if err != nil {
		panic(err)
	}

	for _, v := range []float64{10, 20, 20} {
		fmt.Printf("%.1f ", f.ProcessSample(v))
	}
	fmt.Println()
	// Output:
	// 10.0 15.0 17.5
}

func ExampleFilter_ProcessSampleWeighted() {
	f, err := lowpass.New()
	if err != nil {
		panic(err)
	}

	f.ProcessSample(0)

	// A frozen weight ignores new samples entirely.
	fmt.Printf("%.1f\n", f.ProcessSampleWeighted(100, 0))
	// Output:
	// 0.0
}
