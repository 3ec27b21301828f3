// Package errors provides the structured error type shared by the generator packages.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes map onto the failure taxonomy of the resolution engine:
//
//   - NotFound: a group or subgroup is absent from a corpus. Never fatal, the
//     engine treats it as an empty candidate pool.
//   - InvalidArgument: a configuration declaration failed to parse
//     (MalformedModifier) or a constructor received an invalid config.
//   - Unavailable: a database or configuration corpus could not be loaded
//     (CorpusUnavailable). Fatal before any resolution.
//   - Internal: anything else, including random source failures.
//
// # Basic Usage
//
//	err := errors.GroupNotFound("Race")
//	err := errors.MalformedModifier("Fear_by_x", "weight is not an integer")
//
// Wrapping keeps the original code:
//
//	if err := loadDir(path); err != nil {
//	    return errors.Wrap(err, "failed to load database")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // empty pool
//	}
//
//	code := errors.GetCode(err)
//	os.Exit(code.ExitCode())
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Groups == nil {
//	    vb.RequiredField("Groups")
//	}
//	return vb.Build()
package errors
