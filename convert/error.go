package convert

import "github.com/ardnew/json2kdl/pkg"

// Predefined errors (sentinel values).
var (
	ErrRootNotArray   = pkg.NewError("document root is not an array")
	ErrMissingName    = pkg.NewError("node has no string name")
	ErrBadArguments   = pkg.NewError("node arguments is not an array")
	ErrBadProperties  = pkg.NewError("node properties is not an object")
	ErrBadChildren    = pkg.NewError("node children is not an array")
	ErrBadNodeType    = pkg.NewError("node type is not a string")
	ErrClassification = pkg.NewError("value cannot be represented as a literal")
	ErrNumericRange   = pkg.NewError("number out of range")
	ErrPredicate      = pkg.NewError("node predicate failed")
)
