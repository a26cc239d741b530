package jsdoc

import (
	"github.com/Penify-dev/jsdoc-parser/compose"
	"github.com/Penify-dev/jsdoc-parser/core"
)

// ParseOptions holds configuration for parsing. See core.ParseOptions for
// field documentation.
type ParseOptions = core.ParseOptions

// ComposeOptions holds configuration for composing. See compose.Options for
// field documentation.
type ComposeOptions = compose.Options

// DefaultParseOptions returns the options Parse uses: collect recoverable
// errors, collapse multi-line tag descriptions to single spaces.
func DefaultParseOptions() ParseOptions {
	return core.DefaultParseOptions()
}

// DefaultComposeOptions returns the options Compose uses: no forced
// wrapping, " * " interior line marker.
func DefaultComposeOptions() ComposeOptions {
	return compose.DefaultOptions()
}
