package periodic

import (
	"time"
	"unicode/utf8"
)

// MaxSearchLength is the maximum number of letters the search box holds.
const MaxSearchLength = 18

// Element size limits for Ctrl+wheel zoom.
const (
	MinElementSize  float32 = 40
	MaxElementSize  float32 = 150
	ElementSizeStep float32 = 5
)

// SearchState is the search box contents and cursor.
// Cursor is a rune offset in 0..len(Buffer).
type SearchState struct {
	Buffer string
	Cursor int

	// CursorSince is the clock value of the last edit or cursor move.
	// The cursor blink phase is measured from it so the cursor is visible
	// right after typing.
	CursorSince time.Duration
}

// UIState is everything the user can change. It is replaced, never
// mutated, once per frame by folding events through Reduce.
type UIState struct {
	Selected     int // 1-based atomic number
	Search       SearchState
	Frozen       bool
	DebugVisible bool
	ElementSize  float32
}

// NewUIState returns the state at startup: hydrogen selected, empty search.
func NewUIState(elementSize float32) UIState {
	return UIState{Selected: 1, ElementSize: elementSize}
}

// EventKind identifies an input event.
type EventKind uint8

const (
	EventInsert EventKind = iota
	EventBackspace
	EventLeft
	EventRight
	EventPaste
	EventSelect
	EventFreeze
	EventToggleDebug
	EventZoom
)

// Event is one input action applied to UIState.
type Event struct {
	Kind   EventKind
	Rune   rune    // EventInsert
	Text   string  // EventPaste
	Number int     // EventSelect
	Delta  float32 // EventZoom
}

// Reduce returns the state after applying ev at clock value now.
func Reduce(s UIState, ev Event, now time.Duration) UIState {
	switch ev.Kind {
	case EventInsert:
		s.Search = s.Search.Insert(ev.Rune, now)
	case EventBackspace:
		s.Search = s.Search.Backspace(now)
	case EventLeft:
		s.Search = s.Search.MoveLeft(now)
	case EventRight:
		s.Search = s.Search.MoveRight(now)
	case EventPaste:
		for _, r := range ev.Text {
			s.Search = s.Search.Insert(r, now)
		}
	case EventSelect:
		if ev.Number >= 1 {
			s.Selected = ev.Number
		}
	case EventFreeze:
		s.Frozen = !s.Frozen
	case EventToggleDebug:
		s.DebugVisible = !s.DebugVisible
	case EventZoom:
		s.ElementSize = clampf(s.ElementSize+ev.Delta*ElementSizeStep, MinElementSize, MaxElementSize)
	}
	return s
}

// ReduceAll folds events into s in order.
func ReduceAll(s UIState, events []Event, now time.Duration) UIState {
	for _, ev := range events {
		s = Reduce(s, ev, now)
	}
	return s
}

// isSearchLetter reports whether r may be typed into the search box.
func isSearchLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Insert adds r at the cursor. Anything but an ASCII letter, or a letter
// that would exceed MaxSearchLength, leaves the state unchanged.
func (s SearchState) Insert(r rune, now time.Duration) SearchState {
	if !isSearchLetter(r) || utf8.RuneCountInString(s.Buffer) >= MaxSearchLength {
		return s
	}
	runes := []rune(s.Buffer)
	cursor := s.clampedCursor(len(runes))
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:cursor]...)
	out = append(out, r)
	out = append(out, runes[cursor:]...)
	return SearchState{Buffer: string(out), Cursor: cursor + 1, CursorSince: now}
}

// Backspace removes the rune before the cursor. At the start of the
// buffer it does nothing.
func (s SearchState) Backspace(now time.Duration) SearchState {
	runes := []rune(s.Buffer)
	cursor := s.clampedCursor(len(runes))
	if cursor == 0 {
		return s
	}
	out := make([]rune, 0, len(runes)-1)
	out = append(out, runes[:cursor-1]...)
	out = append(out, runes[cursor:]...)
	return SearchState{Buffer: string(out), Cursor: cursor - 1, CursorSince: now}
}

// MoveLeft moves the cursor one rune left if possible.
func (s SearchState) MoveLeft(now time.Duration) SearchState {
	if s.Cursor > 0 {
		s.Cursor--
		s.CursorSince = now
	}
	return s
}

// MoveRight moves the cursor one rune right if possible.
func (s SearchState) MoveRight(now time.Duration) SearchState {
	if s.Cursor < utf8.RuneCountInString(s.Buffer) {
		s.Cursor++
		s.CursorSince = now
	}
	return s
}

// CursorVisible reports whether the blinking cursor is shown at now.
// It is on for the first half of every second since CursorSince.
func (s SearchState) CursorVisible(now time.Duration) bool {
	elapsed := now - s.CursorSince
	if elapsed < 0 {
		return true
	}
	return elapsed%time.Second < 500*time.Millisecond
}

func (s SearchState) clampedCursor(n int) int {
	if s.Cursor < 0 {
		return 0
	}
	if s.Cursor > n {
		return n
	}
	return s.Cursor
}

// EventsFromInput converts one frame of input into events. clipboard is
// called only when Ctrl+V is pressed. Typed characters are ignored while
// Ctrl is held so shortcuts do not leak into the search box.
func EventsFromInput(in *InputState, clipboard func() string) []Event {
	if in == nil {
		return nil
	}

	var events []Event
	if in.KeyPressed(KeyFreeze) {
		events = append(events, Event{Kind: EventFreeze})
	}
	if in.KeyPressed(KeyToggleDebug) {
		events = append(events, Event{Kind: EventToggleDebug})
	}

	if in.ModCtrl {
		if in.KeyPressed(KeyV) && clipboard != nil {
			if text := clipboard(); text != "" {
				events = append(events, Event{Kind: EventPaste, Text: text})
			}
		}
		if in.MouseWheelY != 0 {
			events = append(events, Event{Kind: EventZoom, Delta: in.MouseWheelY})
		}
	} else {
		for _, r := range in.InputChars {
			if isSearchLetter(r) {
				events = append(events, Event{Kind: EventInsert, Rune: r})
			}
		}
	}

	if in.KeyRepeated(KeyBackspace) {
		events = append(events, Event{Kind: EventBackspace})
	}
	if in.KeyRepeated(KeyLeft) {
		events = append(events, Event{Kind: EventLeft})
	}
	if in.KeyRepeated(KeyRight) {
		events = append(events, Event{Kind: EventRight})
	}
	return events
}
