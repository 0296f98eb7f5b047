package periodic

import (
	"fmt"
	"strings"
)

// HintKey represents a keyboard key for hint display.
type HintKey string

// Hint keys for the table's controls.
const (
	HintKeyType      HintKey = "a-z"
	HintKeyBackspace HintKey = "Bksp"
	HintKeyLeftRight HintKey = "←→"
	HintKeyPaste     HintKey = "Ctrl+V"
	HintKeyClick     HintKey = "Click"
	HintKeyZoom      HintKey = "Ctrl+Scroll"
	HintKeyFreeze    HintKey = "Num1"
	HintKeyDebug     HintKey = "`"
)

// HintAction pairs a key with its action description.
type HintAction struct {
	Key    HintKey
	Action string
}

// Hint creates a HintAction for use with HintFooter.
func Hint(key HintKey, action string) HintAction {
	return HintAction{Key: key, Action: action}
}

// DefaultHints lists every control of the table.
var DefaultHints = []HintAction{
	Hint(HintKeyClick, "Select"),
	Hint(HintKeyType, "Search"),
	Hint(HintKeyLeftRight, "Move cursor"),
	Hint(HintKeyPaste, "Paste"),
	Hint(HintKeyZoom, "Zoom"),
	Hint(HintKeyFreeze, "Freeze"),
	Hint(HintKeyDebug, "Debug"),
}

// FormatHints joins hints as "[key] action" pairs.
//
// Renders as: "[Click] Select  [a-z] Search  [Num1] Freeze"
func FormatHints(hints ...HintAction) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Action))
	}
	return strings.Join(parts, "  ")
}

// HintFooter draws the hints right-aligned along the bottom edge.
func (ctx *Context) HintFooter(hints ...HintAction) {
	if len(hints) == 0 {
		return
	}

	const margin = float32(10)
	gray := ctx.Style().TextColor.WithAlpha(50).Packed()
	ctx.Text(ctx.DisplaySize.X-margin, ctx.DisplaySize.Y-margin, FormatHints(hints...), TextSizeDebug, gray, AlignRight, AlignBottom)
}

// HintStatus draws a status line above the hint footer.
func (ctx *Context) HintStatus(format string, args ...any) {
	const margin = float32(10)
	y := ctx.DisplaySize.Y - margin - ctx.LineHeight(TextSizeDebug)
	gray := ctx.Style().TextColor.WithAlpha(50).Packed()
	ctx.Text(ctx.DisplaySize.X-margin, y, fmt.Sprintf(format, args...), TextSizeDebug, gray, AlignRight, AlignBottom)
}
