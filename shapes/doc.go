// Package shapes draws primitive shapes (lines, circles, rectangles
// and text) onto a canvas.Context.
//
// Each helper sets the style attributes it needs from its parameters,
// issues its path and paint commands on a fresh path, and leaves the
// path empty on return. Whether the style changes are undone on return
// is decided by the Profile of the Drawer:
//
//	d := shapes.New(shapes.Standard, i18n.Identity)
//	d.Rect(ctx, 10, 10, 40, 20, "steelblue", shapes.Fill(false), shapes.LineWidth(2))
//	d.Text(ctx, "Depth", 10, 60, "black")
//
// The package level functions use Default.
package shapes
