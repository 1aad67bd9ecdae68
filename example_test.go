// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s_test

import (
	"fmt"

	"github.com/asciitosvg/a2s"
)

func Example() {
	diagram := []byte(`+--+
|Hi|---->
+--+`)
	d, err := a2s.Parse(diagram, a2s.WithScale(9, 16))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, g := range d.Groups() {
		for _, o := range g.Objects {
			fmt.Printf("%s %s closed=%v %q\n", g.Name, o.ID(), o.IsClosed(), o.Text())
		}
	}
	// Output:
	// boxes path0 closed=true ""
	// lines path1 closed=false ""
	// text text2 closed=false "Hi"
}
