// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package iterphys_test

import (
	"fmt"

	iterphys "github.com/durganmcbroom/iterative-physics"
)

// ExampleEngine_Tick runs scenario 1 from spec §8: a single body in
// free fall under a constant acceleration equation, for one second at
// 60 ticks/second.
func ExampleEngine_Tick() {
	bodies := []iterphys.BodySpec{
		{Name: "A", Mass: 1, Width: 1, Height: 1, X: 0, Y: 100},
	}
	eng, err := iterphys.New(bodies, []string{"a_A = -100*hatj"}, 1.0/60)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}
	for i := 0; i < 60; i++ {
		if _, err := eng.Tick(); err != nil {
			fmt.Println("tick error:", err)
			return
		}
	}
	y := eng.State()[0].Y
	fmt.Println(y > 49 && y < 51)
	// Output: true
}
