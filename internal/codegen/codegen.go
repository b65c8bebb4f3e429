// Package codegen builds the textual hook calls the transformer emits
// against the runtime's fixed short-name table. Every exported function
// here returns a ready-to-splice fragment of target-language source; no
// function here walks the AST or owns any state beyond the runtime
// global identifier it is told to qualify against.
//
// Any function that assembles a new hook-call fragment belongs here.
// When adding one, please:
//
//  1. Keep the short name bit-exact with the wire contract in hooks.go —
//     existing analyses depend on these names.
//  2. Give every exported function a godoc-compatible comment.
//  3. Keep unit tests basic; the generated fragments are exercised much
//     more thoroughly by the end-to-end tests in internal/transform.
package codegen
