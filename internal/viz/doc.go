// Package viz draws the simulator's two surfaces in the terminal.
//
//   - [Chart]: solubility curve and current solution on a braille canvas
//   - [Vessel]: beaker with liquid level and precipitate layer
//   - [Canvas]: Braille-based pixel canvas shared by the chart layers
//
// Every Draw call clears its surface first; nothing is carried over from
// the previous pass. Render turns a surface into styled text for a
// [Theme], so the same drawing can be shown in any colour scheme.
package viz
