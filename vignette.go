package periodic

// VignetteRingCount is the number of rings drawn over an image.
const VignetteRingCount = 40

// Vignette alpha ramp: ring i of n has alpha start + span*i/n, clamped to
// 0..100. Inner rings come out fully transparent.
const (
	vignetteAlphaStart float32 = -60
	vignetteAlphaSpan  float32 = 160
)

// VignetteRing is one unfilled square drawn over an image.
type VignetteRing struct {
	Bounds    Rect
	Alpha     float32 // 0-100
	Thickness float32
}

// VignetteRings returns the rings fading r to black towards its edge.
// Ring i (1..n) has half-width i/n of r's half-width, so the last ring
// traces the edge at full opacity.
func VignetteRings(r Rect, n int) []VignetteRing {
	if n <= 0 || r.W <= 0 || r.H <= 0 {
		return nil
	}

	c := r.Center()
	step := r.W / 2 / float32(n)
	rings := make([]VignetteRing, n)
	for i := 1; i <= n; i++ {
		hw := r.W / 2 * float32(i) / float32(n)
		hh := r.H / 2 * float32(i) / float32(n)
		rings[i-1] = VignetteRing{
			Bounds:    Rect{X: c.X - hw, Y: c.Y - hh, W: 2 * hw, H: 2 * hh},
			Alpha:     clampf(vignetteAlphaStart+vignetteAlphaSpan*float32(i)/float32(n), 0, 100),
			Thickness: step + 1,
		}
	}
	return rings
}

// drawImage draws a texture with a vignette, or the placeholder when the
// texture is missing.
func drawImage(ctx *Context, tex Texture, ok bool, r Rect) {
	st := ctx.Style()
	dl := ctx.DrawList
	if !ok || tex.ID == 0 {
		dl.AddRect(r.X, r.Y, r.W, r.H, st.Placeholder.Packed())
		c := r.Center()
		ctx.Text(c.X, c.Y, "no image", TextSizePanel*st.Scale(), st.TextColor.WithAlpha(60).Packed(), AlignCenter, AlignMiddle)
		return
	}

	dl.AddImage(tex.ID, r.X, r.Y, r.W, r.H, ColorWhite)
	for _, ring := range VignetteRings(r, VignetteRingCount) {
		if ring.Alpha <= 0 {
			continue
		}
		b := ring.Bounds
		dl.AddRectOutline(b.X, b.Y, b.W, b.H, HSBA{A: ring.Alpha}.Packed(), ring.Thickness)
	}
}
