// Package gui renders the simulation in a raylib window.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	Up    - Speed up
//	Down  - Slow down
//	+/=   - Zoom in
//	-     - Zoom out
//	R     - Reset view
//	E     - Follow/unfollow the follow body
//	Esc   - Quit
package gui
