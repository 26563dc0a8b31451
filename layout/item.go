package layout

// Item is a hint attached to a widget, telling the layout algorithm of its
// parent how to treat it. Item is a closed union of
//
//	StackItem | LinearItem | CustomItem | nil
//
// with nil meaning "no hint". Custom algorithms carry their own hints in a
// CustomItem and recover them with a type assertion.
type Item interface {
	isItem()
}

// StackItem is the hint for children of a Stack. Stack children always fill
// the available box, so there is nothing to configure.
type StackItem struct{}

func (StackItem) isItem() {}

// LinearItem is the hint for children of a Linear layout.
type LinearItem struct {
	Grow bool // take an equal share of the space left by fixed siblings
}

func (LinearItem) isItem() {}

// Grow returns a LinearItem for a growing child.
func Grow() LinearItem {
	return LinearItem{Grow: true}
}

// CustomItem carries an opaque hint for a custom layout algorithm.
type CustomItem struct {
	Value interface{}
}

func (CustomItem) isItem() {}

// linearItemOf returns the LinearItem of a child, defaulting to a fixed item
// for children carrying a different hint or none.
func linearItemOf(ctx Context, id ID) LinearItem {
	if item, ok := ctx.LayoutItem(id).(LinearItem); ok {
		return item
	}
	return LinearItem{}
}
