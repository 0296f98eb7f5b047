package periodic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastQueue(t *testing.T) {
	var q ToastQueue
	q.Push("sketch stopped", ToastInfo)
	q.Push("frame budget", ToastWarning)

	visible := q.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "frame budget", visible[0].Message, "newest first")
	assert.Equal(t, ToastWarning, visible[0].Kind)

	q.Advance(DefaultToastLifetime / 2)
	assert.Equal(t, 2, q.Len())
	q.Advance(DefaultToastLifetime / 2)
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Visible())
}

func TestToastQueueLimits(t *testing.T) {
	var q ToastQueue
	for i := range ToastMaxVisible*2 + 1 {
		q.Push(fmt.Sprint(i), ToastInfo)
	}
	assert.Equal(t, ToastMaxVisible, q.Len())

	visible := q.Visible()
	require.Len(t, visible, ToastMaxVisible)
	assert.Equal(t, fmt.Sprint(ToastMaxVisible*2), visible[0].Message)
}

func TestToastOpacity(t *testing.T) {
	toast := Toast{Lifetime: 3}
	assert.Zero(t, toast.Opacity())

	toast.Age = toastFadeIn / 2
	assert.InDelta(t, 0.5, toast.Opacity(), 1e-4)

	toast.Age = 1
	assert.Equal(t, float32(1), toast.Opacity())

	toast.Age = 3 * (1 + toastFadeOut) / 2
	assert.InDelta(t, 0.5, toast.Opacity(), 1e-4)

	toast.Age = 3
	assert.Zero(t, toast.Opacity())
}
