// Package pkg holds the tagcloud libraries.
//
// # Overview
//
// A cloud is built in four stages, each in its own package:
//
//	text
//	  ↓  [words]     split, filter and cap the word list
//	  ↓  [sizing]    count words and give each distinct word a box
//	  ↓  [cloud]     place the boxes around a center without overlap
//	  ↓  [style]     colors, gradients and fonts
//	  ↓  [render]    SVG, JSON, PNG, PDF
//
// [pipeline] runs the stages with caching ([cache]) and hooks
// ([observability]). [equation] compiles the radius expressions used by the
// shaped layouter. [geometry] and [errors] are shared by all of them.
//
// # Quick Start
//
//	l, _ := cloud.NewSpiral(cloud.Config{RayCount: 360})
//	for _, size := range []geometry.Size{geometry.Sz(40, 20), geometry.Sz(30, 12)} {
//	    r, err := l.PutNextRectangle(size)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(r)
//	}
//
// Or run everything at once:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, err := runner.Execute(ctx, text, pipeline.Options{Formats: []string{"svg"}})
package pkg
