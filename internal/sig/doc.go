// Package sig models closure signatures and the two parameter-list
// transforms every generated closure needs.
//
// A signature's parameters arrive as a flat token sequence alternating type
// and name ("int", "p1", "double", "p2"), or as the single sentinel "void"
// meaning no parameters. Declare turns the sequence into the parameter
// declarations of the descriptor's function pointer; Forward keeps only the
// names, for the argument list of the forwarding call. Both prepend the
// implicit data parameter and keep the original order.
package sig
