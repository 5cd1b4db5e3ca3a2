package errors

// Convenience constructors for common failure points.

func ConfigNotFound(path string) *AssembleError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ParseFailed(path string, cause error) *AssembleError {
	return Wrap(cause, CategoryParse, SeverityError, "failed to parse source file").
		WithContext("path", path)
}

func TemplateFailed(id string, cause error) *AssembleError {
	return Wrap(cause, CategoryTemplate, SeverityError, "template compile or render failed").
		WithContext("id", id)
}

func WriteFailed(path string, cause error) *AssembleError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "failed to write output file").
		WithContext("path", path)
}

func GlobFailed(pattern string, cause error) *AssembleError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "glob resolution failed").
		WithContext("pattern", pattern)
}
