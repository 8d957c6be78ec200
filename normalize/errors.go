package normalize

import "errors"

// ErrUnsupportedLanguage reports a language code outside the supported set.
// Returned by BuildPipeline; never produced mid-stream.
var ErrUnsupportedLanguage = errors.New("normalize: unsupported language")

// ErrConflictingConfig reports mutually exclusive options requested
// together, such as both numeral translation directions.
var ErrConflictingConfig = errors.New("normalize: conflicting configuration")
