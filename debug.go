package periodic

import "fmt"

// DefaultDebugSlots is the number of lines in the debug corner.
const DefaultDebugSlots = 5

// Debug corner geometry, in pixels at any element size.
const (
	debugLeftMargin  float32 = 10
	debugFloorOffset float32 = 10
	debugLineSpacing float32 = 2
	debugTopPadding  float32 = 3
)

// DebugCorner is a fixed number of text slots drawn over the bottom or top
// edge of the frame. Slot 0 is nearest the edge.
type DebugCorner struct {
	lines []string
}

// NewDebugCorner creates a debug corner with the given number of slots.
func NewDebugCorner(slots int) *DebugCorner {
	return &DebugCorner{lines: make([]string, max(slots, 1))}
}

// Size returns the number of slots.
func (d *DebugCorner) Size() int {
	return len(d.lines)
}

// SetText writes text into slot index. An index outside the corner does
// not fail; a warning naming the index replaces slot 0 instead.
func (d *DebugCorner) SetText(text string, index int) {
	if index < 0 || index >= len(d.lines) {
		d.lines[0] = fmt.Sprintf("%d ← index>%d not supported", index, len(d.lines))
		return
	}
	d.lines[index] = text
}

// Lines returns the slot contents, slot 0 first.
func (d *DebugCorner) Lines() []string {
	return d.lines
}

func (d *DebugCorner) lineHeight(ctx *Context) float32 {
	return ctx.LineHeight(TextSizeDebug) + debugLineSpacing
}

// ShowBottom draws the slots upwards from the bottom edge over a
// translucent band.
func (d *DebugCorner) ShowBottom(ctx *Context) {
	w, h := ctx.DisplaySize.X, ctx.DisplaySize.Y
	lh := d.lineHeight(ctx)
	floor := h - debugFloorOffset
	top := floor - lh*float32(len(d.lines)) - debugTopPadding

	ctx.DrawList.AddRect(0, top, w, h-top, HSBA{A: 10}.Packed())
	white := ctx.Style().TextColor.Packed()
	for i, msg := range d.lines {
		ctx.Text(debugLeftMargin, floor-lh*float32(i), msg, TextSizeDebug, white, AlignLeft, AlignBottom)
	}
}

// ShowTop draws the slots downwards from the top edge over a translucent band.
func (d *DebugCorner) ShowTop(ctx *Context) {
	w := ctx.DisplaySize.X
	lh := d.lineHeight(ctx)
	offset := debugTopPadding

	ctx.DrawList.AddRect(0, 0, w, offset+lh*float32(len(d.lines)), HSBA{A: 10}.Packed())
	white := ctx.Style().TextColor.Packed()
	for i, msg := range d.lines {
		ctx.Text(debugLeftMargin, offset+lh*float32(i), msg, TextSizeDebug, white, AlignLeft, AlignTop)
	}
}
