// Package vellum is a retained-mode vector scene graph with an Elm-style
// component lifecycle, painted through pluggable rasterizer backends.
//
// # Quick start
//
// A component is a [Model] wrapped with [NewComp]. The model folds messages
// in with Update and builds its view with View:
//
//	type counter struct{ n int }
//
//	func (c *counter) Update(msg int) vellum.ChangeView { c.n += msg; return vellum.ChangeRebuild }
//	func (c *counter) View() *vellum.Node {
//		box := vellum.NewRectangle(vellum.Px(10), vellum.Px(10), vellum.Pct(50), vellum.Px(40))
//		box.Fill = vellum.Fill(vellum.ColorBlue)
//		return vellum.NewNode(box).OnClick(1)
//	}
//
//	scene := vellum.NewScene(vellum.NewComp[int](&counter{}), fonts)
//	scene.Resize(640, 480)
//	scene.Frame(sink, elapsed)
//
// The ebitensink package opens a window around a scene; ggsink renders one
// headlessly to PNG.
//
// # Scene graph
//
// Every element is a [Node]: either a primitive carrying a [Shape]
// ([Rectangle], [Circle], [Path], [Text], [Group]) with children, or a
// component node created with [Embed]. Geometry is measured in [Value]s,
// which are pixels ([Px]), a percentage of the parent ([Pct]) or sized from
// the children ([Auto]).
//
// Fill, stroke, transparency and clip cascade from the nearest [Group]
// that sets them. A shape's own fields win; transparency multiplies.
//
// # Frames
//
// [Scene.Frame] runs the four phases of a frame in order: queued system
// messages are dispatched to every node, components apply their pending
// [ChangeView] verdicts, geometry is recalculated if anything changed, and
// the tree is painted into a [PaintSink]. Listener results are queued on the
// nearest component and never applied during a traversal.
//
// Tweens are built on [gween]; run configuration is read from TOML; tree
// dumps render through Graphviz.
//
// [gween]: https://github.com/tanema/gween
package vellum
