// Package service wires protocol transport to the BMI MCP tools.
//
// It is the transport adapter layer: the package knows how to run MCP over
// stdio or streamable HTTP and delegates business meaning to the domain
// handlers.
package service
