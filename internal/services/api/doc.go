// Package api exposes the BMI engine over a small HTTP JSON surface.
//
// The package owns only transport concerns: decoding the request envelope,
// invoking the pure engine, and rendering results or coded failures. All
// measurement semantics live in internal/bmi.
package api
