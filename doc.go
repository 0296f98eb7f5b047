/*
Package periodic draws an interactive periodic table in immediate mode.

# Overview

The whole frame is rebuilt from UIState every tick. Input is turned into
Events, folded into a new UIState by Reduce, and the table, search box
and detail panel are drawn into a DrawList that a Renderer submits to
the GPU. Nothing else is retained between frames apart from the
animation clock and the toast queue.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1500, 900)
	data, _ := element.LoadFile("data/elements.json")
	table := periodic.New(renderer, data, periodic.WithElementSize(85))

	// Main loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    in := input.Update(dt)

	    table.Frame(in, periodic.Vec2{X: 1500, Y: 900}, dt)
	    input.EndFrame()
	    window.SwapBuffers()
	}

Frame is Update followed by Begin, Draw and End. Hosts that capture a
single frame call Begin, Draw and End directly.

# Keyboard and Mouse Reference

Search box:

	a-z, A-Z         Insert a letter at the cursor (max 18 letters)
	Backspace        Delete the letter before the cursor (repeats when held)
	Left Arrow       Move cursor one letter left
	Right Arrow      Move cursor one letter right
	Ctrl+V           Paste; anything but ASCII letters is dropped

Table:

	Left Mouse       Select the element under the pointer while held
	Ctrl+Scroll      Zoom, in steps of ElementSizeStep
	Numpad 1         Freeze and resume the loop
	`                Toggle the debug corner

# Layout

Elements are placed on an 18x9 grid of ElementSize squares. Lanthanides
(57-71) and actinides (89-103) are moved to rows 8 and 9, starting in
column 4. See GridPosition.

While the search box is non-empty, cells whose name contains the typed
text are highlighted and the rest are dimmed. When exactly one element
matches, or exactly one name equals the text, the grid is replaced by a
card for that element with its Bohr model and Lewis diagram.

# Frame Budget

The loop stops by itself after DefaultFrameBudget frames, as if the
freeze key had been pressed. WithFrameBudget(0) disables this.

# Images and Fonts

Photos and pre-rendered Bohr models are looked up through an ImageStore;
missing images draw a placeholder. Text uses the renderer's built-in
bitmap font unless a FontProvider is set.

# Clipboard Integration

Paste reads from the Clipboard passed with WithClipboard:

	periodic.New(renderer, data, periodic.WithClipboard(opengl.NewClipboard(window)))

Without one, Ctrl+V does nothing.
*/
package periodic
