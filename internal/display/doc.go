// Package display shows pixel arrays to a user.
//
// Rendering is a side effect owned by an injected collaborator rather than
// global session state. Two ports are defined:
//
//   - Renderer receives encoded bytes plus a format tag and embeds them in an
//     interactive session (a terminal, an MCP tool result, a test buffer).
//   - Viewer receives a decoded image and shows it in an external window.
//
// Both paths cast the array to unsigned 8-bit with imaging.CastUint8 before
// building the image, so out-of-range values wrap exactly as they would in
// imaging.ToImage.
//
// # Implementations
//
//   - TerminalRenderer writes the iTerm2 inline image escape sequence
//   - CaptureRenderer keeps the most recent image in memory
//   - SystemViewer writes a temporary PNG and launches the platform opener
package display
