package service

import (
	"context"
	"fmt"
)

// step is one named check or write in a service operation.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// runSteps executes steps in order and stops at the first failure, prefixing the
// error with the failing step's name.
func runSteps(ctx context.Context, steps ...step) error {
	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			return fmt.Errorf("%s -> %w", st.name, err)
		}
	}

	return nil
}
