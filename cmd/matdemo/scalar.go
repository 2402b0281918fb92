package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/spf13/cobra"
)

// scalarOps maps the --op flag to the in-place scalar method.
var scalarOps = map[string]func(m *matrix.Dense, v float64){
	"add": (*matrix.Dense).AddScalar,
	"sub": (*matrix.Dense).SubScalar,
	"mul": (*matrix.Dense).MulScalar,
	"div": (*matrix.Dense).DivScalar,
}

func newScalarCmd(flags *demoFlags) *cobra.Command {
	var (
		op    string
		value float64
	)
	cmd := &cobra.Command{
		Use:   "scalar",
		Short: "Apply a scalar operation to a random matrix",
		Example: `  matdemo scalar --op mul --value 2 --seed 7
  matdemo scalar --op div --value 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScalar(cmd.OutOrStdout(), flags, op, value)
		},
	}
	cmd.Flags().StringVar(&op, "op", "add", "one of add, sub, mul, div")
	cmd.Flags().Float64Var(&value, "value", 1, "scalar operand")

	return cmd
}

func runScalar(w io.Writer, flags *demoFlags, op string, value float64) error {
	apply, ok := scalarOps[op]
	if !ok {
		return fmt.Errorf("unknown --op %q (want add, sub, mul or div)", op)
	}
	if flags.rows < 0 || flags.cols < 0 {
		return fmt.Errorf("rows and cols must be >= 0, got %dx%d: %w", flags.rows, flags.cols, matrix.ErrInvalidDimension)
	}

	m := matrix.New(flags.rows, flags.cols, flags.options(0)...)
	m.Randomize()
	if err := m.Describe(w, "before"); err != nil {
		return err
	}
	apply(m, value)

	return m.Describe(w, fmt.Sprintf("after %s %v", op, value))
}
