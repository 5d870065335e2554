package reveal

import (
	"strings"

	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":            ease.Linear,
	"ease":              ease.InOutQuad,
	"ease-in":           ease.InQuad,
	"ease-out":          ease.OutQuad,
	"ease-in-out":       ease.InOutQuad,
	"ease-in-back":      ease.InBack,
	"ease-out-back":     ease.OutBack,
	"ease-in-out-back":  ease.InOutBack,
	"ease-in-sine":      ease.InSine,
	"ease-out-sine":     ease.OutSine,
	"ease-in-out-sine":  ease.InOutSine,
	"ease-in-quad":      ease.InQuad,
	"ease-out-quad":     ease.OutQuad,
	"ease-in-out-quad":  ease.InOutQuad,
	"ease-in-cubic":     ease.InCubic,
	"ease-out-cubic":    ease.OutCubic,
	"ease-in-out-cubic": ease.InOutCubic,
	"ease-in-quart":     ease.InQuart,
	"ease-out-quart":    ease.OutQuart,
	"ease-in-out-quart": ease.InOutQuart,
}

// Easing returns the tween function for an easing name. Unknown names get
// the "ease" curve.
func Easing(name string) ease.TweenFunc {
	if fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn
	}
	return ease.InOutQuad
}
