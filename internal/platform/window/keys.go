package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyNames translates Ebiten keys into the terminal key names used by the
// shared key table.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "up",
	ebiten.KeyArrowDown:   "down",
	ebiten.KeyArrowLeft:   "left",
	ebiten.KeyArrowRight:  "right",
	ebiten.KeyEscape:      "esc",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeySpace:       "space",
	ebiten.KeyTab:         "tab",
	ebiten.KeyBackspace:   "backspace",
}

// KeyName returns the key name for k. Letters and digits map to themselves
// ("a", "7"); Control+C maps to "ctrl+c". Modifier keys on their own are not
// key presses and report false.
func KeyName(k ebiten.Key, ctrl bool) (string, bool) {
	switch k {
	case ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight,
		ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight,
		ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return "", false
	}

	if name, ok := keyNames[k]; ok {
		return name, true
	}

	var name string
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		name = strings.ToLower(k.String())
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		name = strings.TrimPrefix(k.String(), "Digit")
	default:
		name = strings.ToLower(k.String())
	}
	if ctrl {
		name = "ctrl+" + name
	}
	return name, true
}
