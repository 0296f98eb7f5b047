package periodic

import "strings"

// WrapColumns breaks s into lines of roughly threshold runes.
//
// It walks the text rune by rune with a counter. When the counter reaches
// threshold, the most recent space already written is turned into a
// newline and the counter restarts at the length of the text after it,
// the newline included. Words are never split; text without a space
// before the trigger point is left on one line. Newlines already present
// in s do not reset the counter.
func WrapColumns(s string, threshold int) string {
	if threshold <= 0 || s == "" {
		return s
	}

	out := make([]rune, 0, len(s)+len(s)/threshold+1)
	count := 0
	for _, r := range s {
		count++
		if count >= threshold {
			if idx := lastSpace(out); idx >= 0 {
				out[idx] = '\n'
				count = len(out) - idx
			}
		}
		out = append(out, r)
	}
	return string(out)
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == ' ' {
			return i
		}
	}
	return -1
}

// truncationSuffix marks text cut by TruncateText.
const truncationSuffix = ".."

// TruncateText shortens text to fit within maxWidth at the given size,
// appending ".." when anything was cut. Cell captions use it so that long
// names stay inside their square.
func TruncateText(ctx *Context, text string, size, maxWidth float32) string {
	if ctx.MeasureText(text, size).X <= maxWidth {
		return text
	}

	runes := []rune(text)
	target := maxWidth - ctx.MeasureText(truncationSuffix, size).X
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if ctx.MeasureText(string(runes), size).X <= target {
			return strings.TrimRight(string(runes), " ") + truncationSuffix
		}
	}
	return truncationSuffix
}
