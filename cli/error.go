package cli

import "github.com/ardnew/json2kdl/pkg"

// Predefined errors (sentinel values).
var (
	ErrReadInput     = pkg.NewError("failed to read input")
	ErrWriteOutput   = pkg.NewError("failed to write output")
	ErrOutputDiffers = pkg.NewError("output differs from converted input")
	ErrWriteConfig   = pkg.NewError("write configuration file")
	ErrFileExists    = pkg.NewError("file exists (use --force to overwrite)")
)
