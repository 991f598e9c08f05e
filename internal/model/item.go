package model

// Item is the domain model for a todo entry.
// One Item is one line of the backing file, so Description never holds a newline.
type Item struct {
	Completed   bool
	Description string
}

// Toggle flips the completion flag in place.
func (it *Item) Toggle() { it.Completed = !it.Completed }

// Stats counts completed and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
