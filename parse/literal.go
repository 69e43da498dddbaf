package parse

import "rink/ast"

// Literal dispatches number | string.
//
// Unlike Number's own internal dispatch, this uses Alt rather than
// AltComplete: an unterminated string is genuinely Incomplete (more bytes
// could still close it), and that has to propagate through here rather
// than be collapsed into a terminal Alt failure, so the public boundary
// can turn it into a Complete error.
var Literal ParseFunc[ast.Literal] = Alt(Number, String)
