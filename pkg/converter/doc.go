// Package converter runs the clipboard conversion triggered by a hotkey.
//
// Convert loads the current preferences, reads the clipboard, converts the
// text in the requested mode and writes the result back. When the clipboard
// is empty nothing is written and the result is marked Skipped. After a
// successful write the converter optionally sends a paste keystroke to the
// active window (PasteIntoActiveWindow) and gives audible feedback
// (PlaySound). Failures of those two follow-ups are logged and reported in the
// Result but do not fail the conversion: the clipboard already holds the
// converted text.
//
//	conv := converter.New(cb, store,
//	    converter.WithLogger(log),
//	    converter.WithPaster(converter.NewCommandPaster(nil)),
//	    converter.WithNotifier(converter.NewBellNotifier(os.Stderr)),
//	)
//	res, err := conv.Convert(ctx, cleantext.ModePlain)
package converter
