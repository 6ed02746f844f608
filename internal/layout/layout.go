package layout

// Box is the layout view of one child: its style and the size its content
// would occupy if left unconstrained.
type Box struct {
	Style   Style
	Natural Size
}

// Arrange assigns an absolute Rect to every box inside content.
//
// Flow boxes are stacked along dir, separated by gap and their margins. On the
// cross axis an auto dimension stretches for Column stacks (width) and takes
// the natural size otherwise. Absolute boxes are placed at Top/Left of content
// and do not advance the stacking cursor.
func Arrange(dir Direction, content Rect, gap int, boxes []Box) []Rect {
	rects := make([]Rect, len(boxes))
	cursor := 0
	placed := 0
	for i, b := range boxes {
		w, h := resolveSize(dir, content, b)
		if b.Style.Position == Absolute {
			rects[i] = Rect{
				X:      content.X + b.Style.Left.Resolve(content.Width, 0) + b.Style.Margin.Left,
				Y:      content.Y + b.Style.Top.Resolve(content.Height, 0) + b.Style.Margin.Top,
				Width:  w,
				Height: h,
			}
			continue
		}
		if placed > 0 {
			cursor += gap
		}
		placed++
		switch dir {
		case Column:
			rects[i] = Rect{
				X:      content.X + b.Style.Margin.Left,
				Y:      content.Y + cursor + b.Style.Margin.Top,
				Width:  w,
				Height: h,
			}
			cursor += b.Style.Margin.Vertical() + h
		default:
			rects[i] = Rect{
				X:      content.X + cursor + b.Style.Margin.Left,
				Y:      content.Y + b.Style.Margin.Top,
				Width:  w,
				Height: h,
			}
			cursor += b.Style.Margin.Horizontal() + w
		}
	}
	return rects
}

// Extent returns the natural size of a stack of boxes laid out along dir
// when avail is the space offered by the parent.
func Extent(dir Direction, gap int, boxes []Box, avail Size) Size {
	var main, cross, placed int
	content := Rect{Width: avail.Width, Height: avail.Height}
	for _, b := range boxes {
		w, h := resolveSize(dir, content, b)
		if b.Style.Position == Absolute {
			// Absolute boxes only grow the cross extent so they are not clipped.
			right := b.Style.Left.Resolve(avail.Width, 0) + b.Style.Margin.Horizontal() + w
			bottom := b.Style.Top.Resolve(avail.Height, 0) + b.Style.Margin.Vertical() + h
			if dir == Column {
				cross = max(cross, right)
			} else {
				cross = max(cross, bottom)
			}
			continue
		}
		if placed > 0 {
			main += gap
		}
		placed++
		if dir == Column {
			main += h + b.Style.Margin.Vertical()
			cross = max(cross, w+b.Style.Margin.Horizontal())
		} else {
			main += w + b.Style.Margin.Horizontal()
			cross = max(cross, h+b.Style.Margin.Vertical())
		}
	}
	if dir == Column {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

func resolveSize(dir Direction, content Rect, b Box) (int, int) {
	fallbackW := b.Natural.Width
	if dir == Column && b.Style.Position == Relative {
		fallbackW = content.Width - b.Style.Margin.Horizontal()
	}
	w := b.Style.Width.Resolve(content.Width, fallbackW)
	h := b.Style.Height.Resolve(content.Height, b.Natural.Height)
	return max(0, w), max(0, h)
}
