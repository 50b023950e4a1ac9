package drag

// ToLocal converts a pointer position in screen coordinates into coordinates
// local to canvas, whose rectangle is given in the same screen space.
//
// canvas must be freshly measured by the caller; the engine re-queries it on
// every frame so scrolling or resizing never desynchronizes the mapping.
func ToLocal(pointer Point, canvas Rect) Point {
	return Point{
		X: pointer.X - canvas.X,
		Y: pointer.Y - canvas.Y,
	}
}
