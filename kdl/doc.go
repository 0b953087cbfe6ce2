// Package kdl models a KDL document and renders it as text.
//
// A [Document] is an ordered list of [Node] values. Each node has a name, an
// optional type annotation, an ordered list of [Entry] values and an
// optional child document. Entries are positional arguments or named
// properties; the model keeps all arguments ahead of all properties.
//
// Rendering follows KDL 1.0:
//
//	(ohnono)ohno
//	bees true 42 (my-neat-float)3.1415 null "q?" k="v"
//	lemon {
//	    child age=(my-super-cool-int)3
//	}
//
// Names, keys and annotations are written bare when they are valid KDL
// identifiers and as quoted strings otherwise.
package kdl
