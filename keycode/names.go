package keycode

// Name maps key codes to the identifiers used in keymap files and the
// keymap export command. Codes without an entry render as Empty.
var Name = map[KeyCode]string{
	Empty:          "Empty",
	ErrorRollOver:  "ErrorRollOver",
	POSTFail:       "POSTFail",
	ErrorUndefined: "ErrorUndefined",

	// Letters
	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G",
	H: "H", I: "I", J: "J", K: "K", L: "L", M: "M", N: "N",
	O: "O", P: "P", Q: "Q", R: "R", S: "S", T: "T", U: "U",
	V: "V", W: "W", X: "X", Y: "Y", Z: "Z",

	// Numbers
	Num1: "1", Num2: "2", Num3: "3", Num4: "4", Num5: "5",
	Num6: "6", Num7: "7", Num8: "8", Num9: "9", Num0: "0",

	// Special keys
	Enter:      "Enter",
	Escape:     "Escape",
	Backspace:  "Backspace",
	Tab:        "Tab",
	Space:      "Space",
	Minus:      "Minus",
	Equal:      "Equal",
	LeftBrace:  "LeftBrace",
	RightBrace: "RightBrace",
	Backslash:  "Backslash",
	NonUSHash:  "NonUSHash",
	Semicolon:  "Semicolon",
	Apostrophe: "Apostrophe",
	Grave:      "Grave",
	Comma:      "Comma",
	Period:     "Period",
	Slash:      "Slash",
	CapsLock:   "CapsLock",

	// Function keys
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",

	// Control cluster and arrows
	PrintScreen: "PrintScreen",
	ScrollLock:  "ScrollLock",
	Pause:       "Pause",
	Insert:      "Insert",
	Home:        "Home",
	PageUp:      "PageUp",
	Delete:      "Delete",
	End:         "End",
	PageDown:    "PageDown",
	Right:       "Right",
	Left:        "Left",
	Down:        "Down",
	Up:          "Up",
	NumLock:     "NumLock",
	Application: "Application",

	// Media
	Mute:       "Mute",
	VolumeUp:   "VolumeUp",
	VolumeDown: "VolumeDown",

	// Modifiers
	LeftCtrl:   "LeftCtrl",
	LeftShift:  "LeftShift",
	LeftAlt:    "LeftAlt",
	LeftGUI:    "LeftGUI",
	RightCtrl:  "RightCtrl",
	RightShift: "RightShift",
	RightAlt:   "RightAlt",
	RightGUI:   "RightGUI",
}

// byName is the reverse of Name, built once at init.
var byName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(Name))
	for k, n := range Name {
		m[n] = k
	}
	return m
}()

// String returns the key's identifier, or "Empty" for unnamed codes.
func (k KeyCode) String() string {
	if n, ok := Name[k]; ok {
		return n
	}
	return Name[Empty]
}

// Parse resolves a keymap-file identifier to its KeyCode.
func Parse(name string) (KeyCode, bool) {
	k, ok := byName[name]
	return k, ok
}
