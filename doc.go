// Package cpdraw renders the debug-draw output of a cp physics space into a
// gg drawing context.
//
// A Renderer receives the primitives cp emits while walking a space
// (circles, segments, polygons, dots) plus the extras cp leaves to the
// caller (bounding boxes, colliding pairs, body transforms, text) and turns
// them into immediate-mode path, fill and stroke calls on a Canvas. Nothing
// is retained between frames.
//
// Physics coordinates are meters. A Scale maps them to screen points:
//
//	dc := gg.NewContext(1024, 768)
//	r := cpdraw.NewRenderer(dc, cpdraw.WithScale(cpdraw.NewScale(50)))
//	r.Clear(cpdraw.Black)
//	r.DrawSpace(space)
//	if err := r.Flush(); err != nil {
//		log.Print(err)
//	}
package cpdraw
