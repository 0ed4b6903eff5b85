package packet

// Pool hands out windows and takes them back. Borrowed windows are ready to
// read: cursor at the data start, limit at the payload end. Recycle must be
// called at most once per borrow; Reader clears its own reference before
// recycling so it can never double-recycle.
type Pool interface {
	Borrow() *Window
	Recycle(*Window)
}
