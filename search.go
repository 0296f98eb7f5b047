package periodic

import (
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/text/cases"

	"github.com/go-theft-auto/periodic/element"
)

// MatchSet returns the 1-based ordinals of the elements whose name
// contains buffer, ignoring case. An empty buffer matches nothing.
//
// When exactly one matched name equals the buffer, the set collapses to
// that element so that "Tin" selects tin rather than every name containing
// "tin".
func MatchSet(elements []element.Element, buffer string) []int {
	if buffer == "" {
		return nil
	}

	fold := cases.Fold()
	needle := fold.String(buffer)

	var matches []int
	exact, exactCount := 0, 0
	for i, e := range elements {
		name := fold.String(e.Name)
		if !strings.Contains(name, needle) {
			continue
		}
		matches = append(matches, i+1)
		if name == needle {
			exact = i + 1
			exactCount++
		}
	}

	if exactCount == 1 {
		return []int{exact}
	}
	return matches
}

// matcher answers per-cell highlight questions for one frame.
type matcher struct {
	fold   cases.Caser
	needle string
}

func newMatcher(buffer string) *matcher {
	if buffer == "" {
		return nil
	}
	m := &matcher{fold: cases.Fold()}
	m.needle = m.fold.String(buffer)
	return m
}

// matches reports whether name contains the search text.
func (m *matcher) matches(name string) bool {
	return strings.Contains(m.fold.String(name), m.needle)
}

// drawSearchBox draws the search field in the top-left corner with its
// magnifying glass, text and blinking cursor.
func (t *Table) drawSearchBox(ctx *Context, s SearchState) {
	st := ctx.Style()
	size := st.ElementSize
	k := st.Scale()
	textSize := TextSizeSearch * k
	h := ctx.LineHeight(textSize)
	dl := ctx.DrawList

	dl.AddRect(0, 0, size*2.5, h, st.SearchBg.Packed())
	dl.AddRectOutline(0, 0, size*2.5, h, st.SearchBorder.Packed(), 1)

	// Magnifying glass: handle from the bottom-left towards the lens,
	// meeting it at 45 degrees.
	lensX := size * 0.13
	lensY := h - size*0.13
	lensR := size * 0.08 / 2
	joinX := lensX - lensR*math32.Sqrt(2)/2
	joinY := lensY + lensR*math32.Sqrt(2)/2
	border := st.SearchBorder.Packed()
	dl.AddLine(size*0.05, h-size*0.05, joinX, joinY, border, k)
	dl.AddCircleOutline(lensX, lensY, lensR, border, k)

	textX := size * 0.2
	dl.PushClipRect(0, 0, size*2.5, h)
	ctx.Text(textX, k, s.Buffer, textSize, st.SearchText.Packed(), AlignLeft, AlignTop)
	dl.PopClipRect()

	if s.CursorVisible(ctx.Clock) {
		cursorX := textX + ctx.MeasureText(" ", textSize).X*float32(s.Cursor) - 0.5
		dl.AddLine(cursorX, 3*k, cursorX, h-3*k, st.CursorColor.Packed(), 1)
	}
}
