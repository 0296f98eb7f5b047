package periodic

// ToastKind selects the background color of a toast.
type ToastKind uint8

const (
	ToastInfo ToastKind = iota
	ToastWarning
)

// Toast is a short message shown in the top-right corner.
type Toast struct {
	Message  string
	Kind     ToastKind
	Age      float32 // seconds since shown
	Lifetime float32 // seconds
}

// Toast timing, in seconds, and queue limits.
const (
	DefaultToastLifetime float32 = 3
	ToastMaxVisible              = 5

	toastFadeIn  float32 = 0.15
	toastFadeOut float32 = 0.7 // fraction of the lifetime after which it fades
)

// Opacity returns how visible the toast is at its current age, 0 to 1.
func (t Toast) Opacity() float32 {
	switch {
	case t.Age >= t.Lifetime:
		return 0
	case t.Age < toastFadeIn:
		return t.Age / toastFadeIn
	case t.Age > t.Lifetime*toastFadeOut:
		return 1 - (t.Age-t.Lifetime*toastFadeOut)/(t.Lifetime*(1-toastFadeOut))
	default:
		return 1
	}
}

// ToastQueue holds the live toasts, oldest first.
type ToastQueue struct {
	items []Toast
}

// Push shows a message for DefaultToastLifetime seconds.
func (q *ToastQueue) Push(message string, kind ToastKind) {
	q.items = append(q.items, Toast{Message: message, Kind: kind, Lifetime: DefaultToastLifetime})
	if len(q.items) > ToastMaxVisible*2 {
		q.items = q.items[len(q.items)-ToastMaxVisible:]
	}
}

// Advance ages every toast by dt seconds and drops expired ones.
func (q *ToastQueue) Advance(dt float32) {
	live := q.items[:0]
	for _, t := range q.items {
		t.Age += dt
		if t.Age < t.Lifetime {
			live = append(live, t)
		}
	}
	q.items = live
}

// Len returns the number of live toasts.
func (q *ToastQueue) Len() int {
	return len(q.items)
}

// Visible returns at most ToastMaxVisible toasts, newest first.
func (q *ToastQueue) Visible() []Toast {
	n := min(len(q.items), ToastMaxVisible)
	out := make([]Toast, 0, n)
	for i := len(q.items) - 1; i >= len(q.items)-n; i-- {
		out = append(out, q.items[i])
	}
	return out
}

// drawToasts stacks the visible toasts downwards from the top-right corner.
func (ctx *Context) drawToasts(q *ToastQueue) {
	const (
		padX   float32 = 12
		padY   float32 = 8
		margin float32 = 10
		gap    float32 = 6
	)

	st := ctx.Style()
	textSize := TextSizePanel * st.Scale()
	lineH := ctx.LineHeight(textSize)
	y := margin

	for _, t := range q.Visible() {
		a := t.Opacity()
		if a <= 0 {
			continue
		}

		bg := st.ToastInfo
		if t.Kind == ToastWarning {
			bg = st.ToastWarning
		}

		w := ctx.MeasureText(t.Message, textSize).X + padX*2
		h := lineH + padY*2
		x := ctx.DisplaySize.X - margin - w

		ctx.DrawList.AddRect(x, y, w, h, bg.WithAlpha(bg.A*a).Packed())
		ctx.DrawList.AddRectOutline(x, y, w, h, st.TextColor.WithAlpha(25*a).Packed(), 1)
		ctx.Text(x+padX, y+padY, t.Message, textSize, st.TextColor.WithAlpha(100*a).Packed(), AlignLeft, AlignTop)

		y += h + gap
	}
}
