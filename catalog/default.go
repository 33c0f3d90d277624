// ABOUTME: Built-in catalog of the WebMSX JS Bridge demo pages.
// ABOUTME: Used whenever no catalog file is configured.
package catalog

// Default returns the built-in catalog. Add new demos here together with the
// matching file under samples/.
func Default() *Catalog {
	return MustNew(
		Entry{
			ID:       "bridge",
			Label:    "Serial Bridge Demo",
			Filename: "bridge-sample.html",
			Description: "Watches MSX `OUT` on ports `0x50`/`0x51` and feeds bytes back " +
				"through `0x52` (status) and `0x53` (data).",
		},
		Entry{
			ID:       "fullscreen",
			Label:    "Fullscreen UI Demo",
			Filename: "fullscreen-panel.html",
			Description: "Runs the emulator full-window with the bridge panel overlaid. " +
				"Use the **Fullscreen** button in the player to expand it.",
		},
	)
}
