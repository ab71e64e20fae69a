package marquee

// NodeID identifies one stage-owned render node backing a slide.
type NodeID int

// Stage is the rendering surface the engine drives. The stage owns the
// template node and every clone; the engine only holds ids. All methods are
// called from the frame loop's execution context.
type Stage interface {
	// Template returns the node backing the first slide. It is never cloned
	// and never removed by the engine.
	Template() NodeID

	// Clone materializes a copy of the template, appends it to the container
	// and returns its id.
	Clone() NodeID

	// Remove detaches a cloned node from the container.
	Remove(id NodeID)

	// Transform writes a 2D translation for the node: x on the horizontal
	// axis, zero on the vertical axis.
	Transform(id NodeID, x float64)

	// ElementSize reports the template element's rendered box.
	ElementSize() (width, height float64)

	// ContainerSize reports the container's rendered width and left offset.
	ContainerSize() (width, left float64)

	// SetContainerHeight sizes the container to hug its content.
	SetContainerHeight(h float64)

	// Marker reports whether the container carries the named attribute.
	Marker(name string) bool
}
