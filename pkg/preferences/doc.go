// Package preferences models the user's PureText settings and persists them.
//
// Preferences hold three hotkey bindings, one per conversion mode, and the
// behaviour flags consulted after a conversion:
//
//   - PasteIntoActiveWindow – send a paste keystroke once the clipboard is updated.
//   - PlaySound – give audible feedback after every conversion.
//   - TrayIconVisible, Startup – shell integration flags, stored for the GUI front-end.
//
// Default returns Ctrl+Shift+V (pure), Ctrl+Shift+N (plain) and Ctrl+Shift+M
// (html) with pasting enabled and sound disabled.
//
// # Storage
//
// Store is implemented by FileStore (a YAML document), RedisStore (a Redis
// hash) and MemoryStore. Every store returns Default when nothing was saved
// yet and keeps defaults for fields that are missing from the stored data.
// Save validates before writing.
//
//	store := preferences.NewFileStore("puretext.yaml")
//	prefs, err := store.Load(ctx)
//	prefs.PlaySound = true
//	err = store.Save(ctx, prefs)
package preferences
