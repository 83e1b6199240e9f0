package cloud_test

import (
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

func ExampleSpiralLayouter() {
	l, err := cloud.NewSpiral(cloud.Config{RayCount: 4})
	if err != nil {
		panic(err)
	}
	for range 5 {
		r, _ := l.PutNextRectangle(geometry.Sz(2, 2))
		fmt.Println(r)
	}
	// Output:
	// (-1,-1,2,2)
	// (1,1,2,2)
	// (-3,1,2,2)
	// (-3,-3,2,2)
	// (1,-3,2,2)
}

func ExampleShapedLayouter() {
	l, err := cloud.NewShaped(cloud.Config{RayCount: 4, RadiusEquation: cloud.Constant(2)})
	if err != nil {
		panic(err)
	}
	for range 3 {
		r, _ := l.PutNextRectangle(geometry.Sz(2, 2))
		fmt.Println(r)
	}
	// Output:
	// (-1,-1,2,2)
	// (1,-1,2,2)
	// (-1,1,2,2)
}
