package generator

import (
	"context"
	"fmt"
	"io"
)

// ExecuteOptions configures Execute.
type ExecuteOptions struct {
	// DryRun validates each operation without executing it.
	DryRun bool
	// Writer receives one line per operation. Nil discards the report.
	Writer io.Writer
}

// Execute applies ops one at a time, in order, and reports each one as
// "Created: <name>" (or "Would create: <name>" in a dry run) once it has
// succeeded. The first failure is returned as is. Operations applied before
// it are not undone.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	w := opts.Writer
	if w == nil {
		w = io.Discard
	}

	verb := "Created"
	apply := Operation.Execute
	if opts.DryRun {
		verb = "Would create"
		apply = Operation.Validate
	}

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := apply(op, ctx); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", verb, op.Description())
	}

	return nil
}
