package periodic

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(s SearchState, text string) SearchState {
	for _, r := range text {
		s = s.Insert(r, 0)
	}
	return s
}

func TestNewUIState(t *testing.T) {
	s := NewUIState(85)
	assert.Equal(t, 1, s.Selected)
	assert.Empty(t, s.Search.Buffer)
	assert.False(t, s.Frozen)
	assert.Equal(t, float32(85), s.ElementSize)
}

func TestSearchInsert(t *testing.T) {
	s := typeText(SearchState{}, "neon")
	assert.Equal(t, "neon", s.Buffer)
	assert.Equal(t, 4, s.Cursor)

	s = s.MoveLeft(0).MoveLeft(0)
	s = s.Insert('X', time.Second)
	assert.Equal(t, "neXon", s.Buffer)
	assert.Equal(t, 3, s.Cursor)
	assert.Equal(t, time.Second, s.CursorSince)
}

func TestSearchInsertRejects(t *testing.T) {
	s := typeText(SearchState{}, "ab1 -é_c")
	assert.Equal(t, "abc", s.Buffer)

	full := typeText(SearchState{}, strings.Repeat("a", MaxSearchLength+5))
	assert.Len(t, full.Buffer, MaxSearchLength)
	assert.Equal(t, MaxSearchLength, full.Cursor)
}

func TestSearchBackspace(t *testing.T) {
	s := typeText(SearchState{}, "iron")
	s = s.Backspace(0)
	assert.Equal(t, "iro", s.Buffer)
	assert.Equal(t, 3, s.Cursor)

	s = s.MoveLeft(0).MoveLeft(0).MoveLeft(0)
	require.Zero(t, s.Cursor)
	assert.Equal(t, s, s.Backspace(time.Minute), "backspace at the start does nothing")

	s = s.MoveRight(0).Backspace(0)
	assert.Equal(t, "ro", s.Buffer)
	assert.Zero(t, s.Cursor)
}

func TestSearchCursorBounds(t *testing.T) {
	s := SearchState{}
	assert.Zero(t, s.MoveLeft(0).Cursor)
	assert.Zero(t, s.MoveRight(0).Cursor)

	s = typeText(s, "he")
	for range 5 {
		s = s.MoveRight(0)
	}
	assert.Equal(t, 2, s.Cursor)
	for range 5 {
		s = s.MoveLeft(0)
	}
	assert.Zero(t, s.Cursor)
}

func TestCursorVisible(t *testing.T) {
	s := SearchState{CursorSince: 10 * time.Second}
	assert.True(t, s.CursorVisible(10*time.Second))
	assert.True(t, s.CursorVisible(10*time.Second+499*time.Millisecond))
	assert.False(t, s.CursorVisible(10*time.Second+500*time.Millisecond))
	assert.False(t, s.CursorVisible(10*time.Second+999*time.Millisecond))
	assert.True(t, s.CursorVisible(11*time.Second))
	assert.True(t, s.CursorVisible(5*time.Second))
}

func TestReduce(t *testing.T) {
	s := NewUIState(85)

	s = Reduce(s, Event{Kind: EventPaste, Text: "Tin 50"}, 0)
	assert.Equal(t, "Tin", s.Search.Buffer)

	s = Reduce(s, Event{Kind: EventSelect, Number: 26}, 0)
	assert.Equal(t, 26, s.Selected)
	s = Reduce(s, Event{Kind: EventSelect, Number: 0}, 0)
	assert.Equal(t, 26, s.Selected, "invalid numbers are ignored")

	s = Reduce(s, Event{Kind: EventFreeze}, 0)
	assert.True(t, s.Frozen)
	s = Reduce(s, Event{Kind: EventFreeze}, 0)
	assert.False(t, s.Frozen)

	s = Reduce(s, Event{Kind: EventToggleDebug}, 0)
	assert.True(t, s.DebugVisible)
}

func TestReduceZoom(t *testing.T) {
	s := NewUIState(85)

	s = Reduce(s, Event{Kind: EventZoom, Delta: 1}, 0)
	assert.Equal(t, float32(90), s.ElementSize)
	s = Reduce(s, Event{Kind: EventZoom, Delta: -3}, 0)
	assert.Equal(t, float32(75), s.ElementSize)

	s = Reduce(s, Event{Kind: EventZoom, Delta: 100}, 0)
	assert.Equal(t, MaxElementSize, s.ElementSize)
	s = Reduce(s, Event{Kind: EventZoom, Delta: -100}, 0)
	assert.Equal(t, MinElementSize, s.ElementSize)
}

func TestReduceAll(t *testing.T) {
	events := []Event{
		{Kind: EventInsert, Rune: 'n'},
		{Kind: EventInsert, Rune: 'e'},
		{Kind: EventLeft},
		{Kind: EventBackspace},
		{Kind: EventRight},
		{Kind: EventInsert, Rune: 'w'},
	}
	s := ReduceAll(NewUIState(85), events, 0)
	assert.Equal(t, "ew", s.Search.Buffer)
	assert.Equal(t, 2, s.Search.Cursor)
}

func TestEventsFromInputTyping(t *testing.T) {
	assert.Nil(t, EventsFromInput(nil, nil))

	in := NewInputState()
	in.AddInputChar('a')
	in.AddInputChar('1')
	in.AddInputChar('B')
	in.SetKey(KeyBackspace, true)

	events := EventsFromInput(in, nil)
	assert.Equal(t, []Event{
		{Kind: EventInsert, Rune: 'a'},
		{Kind: EventInsert, Rune: 'B'},
		{Kind: EventBackspace},
	}, events)
}

func TestEventsFromInputCtrl(t *testing.T) {
	calls := 0
	clipboard := func() string {
		calls++
		return "neon"
	}

	in := NewInputState()
	in.ModCtrl = true
	in.AddInputChar('v')
	in.SetKey(KeyV, true)
	in.SetMouseWheel(-2)

	events := EventsFromInput(in, clipboard)
	assert.Equal(t, []Event{
		{Kind: EventPaste, Text: "neon"},
		{Kind: EventZoom, Delta: -2},
	}, events)
	assert.Equal(t, 1, calls)

	// Without Ctrl the wheel does nothing and the clipboard is not read.
	in = NewInputState()
	in.SetKey(KeyV, true)
	in.SetMouseWheel(1)
	assert.Empty(t, EventsFromInput(in, clipboard))
	assert.Equal(t, 1, calls)
}

func TestEventsFromInputToggles(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyFreeze, true)
	in.SetKey(KeyToggleDebug, true)
	in.SetKey(KeyLeft, true)
	in.SetKey(KeyRight, true)

	events := EventsFromInput(in, nil)
	assert.Equal(t, []Event{
		{Kind: EventFreeze},
		{Kind: EventToggleDebug},
		{Kind: EventLeft},
		{Kind: EventRight},
	}, events)

	// Holding the freeze key does not toggle again on the next frame.
	in.Reset()
	assert.Empty(t, EventsFromInput(in, nil))
}
