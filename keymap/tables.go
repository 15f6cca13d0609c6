package keymap

import (
	kc "github.com/Alia5/KEYPER/keycode"
)

// Default is the stock ANSI-style layout for the 14x6 matrix. Row 0 is the
// top (Escape/function) row; the FN and bootloader positions in column 0
// map to Empty so they never reach a report.
var Default = Keymap{Normal: normalLayer, FN: fnLayer}

var normalLayer = layerFromRows([6][14]kc.KeyCode{
	{kc.Escape, kc.F1, kc.F2, kc.F3, kc.F4, kc.F5, kc.F6, kc.F7, kc.F8, kc.F9, kc.F10, kc.F11, kc.F12, kc.Home},
	{kc.Grave, kc.Num1, kc.Num2, kc.Num3, kc.Num4, kc.Num5, kc.Num6, kc.Num7, kc.Num8, kc.Num9, kc.Num0, kc.Minus, kc.Equal, kc.Backspace},
	{kc.Tab, kc.Q, kc.W, kc.E, kc.R, kc.T, kc.Y, kc.U, kc.I, kc.O, kc.P, kc.LeftBrace, kc.RightBrace, kc.Backslash},
	{kc.CapsLock, kc.A, kc.S, kc.D, kc.F, kc.G, kc.H, kc.J, kc.K, kc.L, kc.Semicolon, kc.Apostrophe, kc.Enter, kc.PageUp},
	{kc.LeftShift, kc.Z, kc.X, kc.C, kc.V, kc.B, kc.N, kc.M, kc.Comma, kc.Period, kc.Slash, kc.RightShift, kc.Up, kc.PageDown},
	{kc.Empty, kc.LeftCtrl, kc.LeftGUI, kc.LeftAlt, kc.Empty, kc.Empty, kc.Space, kc.Empty, kc.Empty, kc.RightAlt, kc.RightCtrl, kc.Left, kc.Down, kc.Right},
})

var fnLayer = layerFromRows([6][14]kc.KeyCode{
	{kc.Grave, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Mute, kc.VolumeDown, kc.VolumeUp, kc.End},
	{kc.Grave, kc.F1, kc.F2, kc.F3, kc.F4, kc.F5, kc.F6, kc.F7, kc.F8, kc.F9, kc.F10, kc.F11, kc.F12, kc.Delete},
	{kc.Tab, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.PrintScreen, kc.ScrollLock, kc.Pause, kc.Insert},
	{kc.CapsLock, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Left, kc.Down, kc.Up, kc.Right, kc.Empty, kc.Empty, kc.Enter, kc.Home},
	{kc.LeftShift, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.Empty, kc.RightShift, kc.PageUp, kc.End},
	{kc.Empty, kc.LeftCtrl, kc.LeftGUI, kc.LeftAlt, kc.Empty, kc.Empty, kc.Space, kc.Empty, kc.Empty, kc.RightAlt, kc.RightCtrl, kc.Home, kc.PageDown, kc.End},
})
