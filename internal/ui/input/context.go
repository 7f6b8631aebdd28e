package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Index   int
	Total   int
	Segment int
	IsBusy  bool
}

// CurrentIndex returns the cursor position in the active list
func (c *ModelContext) CurrentIndex() int {
	return c.Index
}

// TotalItems returns the length of the active list
func (c *ModelContext) TotalItems() int {
	return c.Total
}

// FocusedSegment returns the code segment holding the cursor
func (c *ModelContext) FocusedSegment() int {
	return c.Segment
}

// Busy reports whether a request is in flight
func (c *ModelContext) Busy() bool {
	return c.IsBusy
}
