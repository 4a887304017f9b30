// Package domain translates MCP tool calls into BMI engine operations.
//
// The package is intentionally explicit about that mapping:
// - bind typed tool arguments,
// - route the call to the pure engine,
// - and surface structured outputs that MCP clients can render.
package domain
