// internal/present/keyboard.go
//
// OS keyboard backend for the Typist.
//
// On Linux the backend creates a uinput device, which needs write access to
// /dev/uinput and about two seconds before the first event is delivered. The
// countdown before typing covers that delay.

package present

import (
	"fmt"

	"github.com/micmonay/keybd_event"
)

var letterKeys = [26]int{
	keybd_event.VK_A, keybd_event.VK_B, keybd_event.VK_C, keybd_event.VK_D,
	keybd_event.VK_E, keybd_event.VK_F, keybd_event.VK_G, keybd_event.VK_H,
	keybd_event.VK_I, keybd_event.VK_J, keybd_event.VK_K, keybd_event.VK_L,
	keybd_event.VK_M, keybd_event.VK_N, keybd_event.VK_O, keybd_event.VK_P,
	keybd_event.VK_Q, keybd_event.VK_R, keybd_event.VK_S, keybd_event.VK_T,
	keybd_event.VK_U, keybd_event.VK_V, keybd_event.VK_W, keybd_event.VK_X,
	keybd_event.VK_Y, keybd_event.VK_Z,
}

// OSKeyboard sends key events through the operating system.
type OSKeyboard struct {
	kb keybd_event.KeyBonding
}

// NewOSKeyboard opens the OS keyboard device.
func NewOSKeyboard() (*OSKeyboard, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("keyboard: open: %w", err)
	}
	return &OSKeyboard{kb: kb}, nil
}

// KeyDown presses the key for r.
func (k *OSKeyboard) KeyDown(r rune) error {
	if err := k.set(r); err != nil {
		return err
	}
	return k.kb.Press()
}

// KeyUp releases the key for r.
func (k *OSKeyboard) KeyUp(r rune) error {
	if err := k.set(r); err != nil {
		return err
	}
	return k.kb.Release()
}

func (k *OSKeyboard) set(r rune) error {
	code, err := keyCode(r)
	if err != nil {
		return err
	}
	k.kb.Clear()
	k.kb.SetKeys(code)
	return nil
}

// keyCode maps a lowercase letter or KeyEnter to a virtual key code.
func keyCode(r rune) (int, error) {
	switch {
	case r == KeyEnter:
		return keybd_event.VK_ENTER, nil
	case r >= 'a' && r <= 'z':
		return letterKeys[r-'a'], nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedKey, r)
	}
}
