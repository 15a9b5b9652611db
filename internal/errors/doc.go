// Package errors provides the structured error type shared by the compendium
// packages.
//
// Errors carry a Code, a user-facing message, an optional cause and optional
// metadata:
//
//	err := errors.NotFound("spell not found").
//	    WithMeta("table", "spell").
//	    WithMeta("id", id)
//
// Wrapping keeps the code of an existing Error and defaults to Internal for
// foreign errors:
//
//	if err := store.Get(ctx, table, id); err != nil {
//	    return errors.Wrap(err, "failed to load record")
//	}
//
// Config structs validate through the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("db_path", cfg.DBPath, vb)
//	errors.ValidateRange("pool_limit", cfg.PoolLimit, 1, 5000, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines:
//   - Repositories and stores return NotFound / AlreadyExists and wrap driver errors.
//   - Orchestrators return InvalidArgument for bad input and FailedPrecondition when a
//     dependency (such as the item pool) is not ready yet.
//   - The CLI turns the code into a process exit status with Code.ExitCode.
package errors
