package term

import "unicode/utf8"

// parseInput parses buffered bytes into events. Bytes at the end that could
// be the start of an unfinished escape or UTF-8 sequence are returned as
// rest so the reader can prepend them to the next read.
//
// Handles:
//   - Printable characters -> KeyEvent{Key: KeyRune}
//   - Control characters -> KeyEvent (Enter, Tab, Ctrl+C, ...)
//   - CSI sequences: arrows, Home/End, Delete, Shift+Tab
//   - SGR-1006 mouse sequences (ESC [ < b ; x ; y M/m)
//   - Focus reports (ESC [ I, ESC [ O)
func parseInput(data []byte) (events []Event, rest []byte) {
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				// A trailing ESC may be the first byte of a sequence split
				// across reads. The reader reports it as the Escape key once
				// escapeTimeout passes with no more input.
				return events, data[i:]
			}
			if data[i+1] != '[' {
				if next := data[i+1]; next >= 0x20 && next < 0x7f {
					events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
					i += 2
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			ev, consumed, incomplete := parseCSI(data[i:])
			if incomplete {
				return events, data[i:]
			}
			if consumed == 0 {
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}
			if ev != nil {
				events = append(events, ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			if key := controlToKey(b); key != KeyNone {
				events = append(events, KeyEvent{Key: key})
			}
			i++
			continue
		}

		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) {
			return events, data[i:]
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8, skip byte
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}
	return events, nil
}

// controlToKey converts a control character (0x00-0x1F) to a Key.
func controlToKey(b byte) Key {
	switch b {
	case 0x03:
		return KeyCtrlC
	case 0x04:
		return KeyCtrlD
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0a, 0x0d:
		return KeyEnter
	case 0x0c:
		return KeyCtrlL
	case 0x11:
		return KeyCtrlQ
	case 0x1a:
		return KeyCtrlZ
	default:
		return KeyNone
	}
}

// parseCSI parses a sequence starting with ESC [. It returns the event (nil
// for recognised but ignored sequences), the bytes consumed, and whether the
// sequence is cut off and needs more input. consumed == 0 and !incomplete
// means the bytes are not a sequence we understand.
func parseCSI(data []byte) (ev Event, consumed int, incomplete bool) {
	if len(data) < 3 {
		return nil, 0, true
	}
	if data[2] == '<' {
		return parseMouseSGR(data)
	}

	// ESC [ params final, where params are digits and ';'.
	var params []int
	cur, have := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			have = true
		case b == ';':
			params = append(params, cur)
			cur, have = 0, false
		case b >= 0x40 && b <= 0x7e:
			if have {
				params = append(params, cur)
			}
			return csiEvent(params, b), i + 1, false
		default:
			return nil, 0, false
		}
	}
	return nil, 0, true
}

// csiEvent maps CSI parameters and final byte to an event.
func csiEvent(params []int, final byte) Event {
	var mod Modifier
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}
	switch final {
	case 'A':
		return KeyEvent{Key: KeyUp, Mod: mod}
	case 'B':
		return KeyEvent{Key: KeyDown, Mod: mod}
	case 'C':
		return KeyEvent{Key: KeyRight, Mod: mod}
	case 'D':
		return KeyEvent{Key: KeyLeft, Mod: mod}
	case 'H':
		return KeyEvent{Key: KeyHome, Mod: mod}
	case 'F':
		return KeyEvent{Key: KeyEnd, Mod: mod}
	case 'Z':
		return KeyEvent{Key: KeyBackTab, Mod: ModShift}
	case 'I':
		return FocusEvent{Focused: true}
	case 'O':
		return FocusEvent{Focused: false}
	case '~':
		if len(params) > 0 && params[0] == 3 {
			return KeyEvent{Key: KeyDelete, Mod: mod}
		}
	}
	return nil
}

// decodeModifier converts the xterm modifier parameter (1 + bits) to flags.
func decodeModifier(param int) Modifier {
	if param < 2 {
		return 0
	}
	bits := param - 1
	var mod Modifier
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseMouseSGR parses an SGR-1006 mouse sequence.
// Format: ESC [ < button ; x ; y M (press/motion) or ... m (release).
// The button field encodes: button number + modifier bits
//
//	bits 0-1: button (0=left, 1=middle, 2=right, 3=none)
//	bit 2: shift
//	bit 3: meta/alt
//	bit 4: ctrl
//	bit 5: motion
//	bit 6: wheel (64=up, 65=down)
func parseMouseSGR(data []byte) (Event, int, bool) {
	button, x, y := 0, 0, 0
	stage := 0 // 0=button, 1=x, 2=y

	for i := 3; i < len(data); i++ {
		b := data[i]

		if b >= '0' && b <= '9' {
			switch stage {
			case 0:
				button = button*10 + int(b-'0')
			case 1:
				x = x*10 + int(b-'0')
			case 2:
				y = y*10 + int(b-'0')
			}
			continue
		}

		if b == ';' {
			stage++
			if stage > 2 {
				return nil, 0, false
			}
			continue
		}

		if b != 'M' && b != 'm' {
			return nil, 0, false
		}
		if stage != 2 {
			return nil, 0, false
		}

		event := MouseEvent{
			X: x - 1, // 1-indexed on the wire
			Y: y - 1,
		}
		if button&4 != 0 {
			event.Mod |= ModShift
		}
		if button&8 != 0 {
			event.Mod |= ModAlt
		}
		if button&16 != 0 {
			event.Mod |= ModCtrl
		}

		if button&64 != 0 {
			if button&1 != 0 {
				event.Button = MouseWheelDown
			} else {
				event.Button = MouseWheelUp
			}
			event.Action = MousePress
			return event, i + 1, false
		}

		switch button & 3 {
		case 0:
			event.Button = MouseLeft
		case 1:
			event.Button = MouseMiddle
		case 2:
			event.Button = MouseRight
		case 3:
			event.Button = MouseNone
		}

		switch {
		case b == 'm':
			event.Action = MouseRelease
		case button&32 != 0 && event.Button == MouseNone:
			event.Action = MouseMotion
		case button&32 != 0:
			event.Action = MouseDrag
		default:
			event.Action = MousePress
		}
		return event, i + 1, false
	}

	return nil, 0, true
}
