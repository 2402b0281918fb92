package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/spf13/cobra"
)

// demoFlags holds the flags shared by every subcommand.
type demoFlags struct {
	rows int
	cols int
	seed int64
}

// options turns the seed flag into matrix options for one random stream;
// seed 0 keeps the process-wide generator.
func (f *demoFlags) options(stream int64) []matrix.Option {
	if f.seed == 0 {
		return nil
	}

	return []matrix.Option{matrix.WithSeed(f.seed + stream)}
}

// newRootCmd builds the command tree. Running the root with no subcommand
// runs the demo.
func newRootCmd() *cobra.Command {
	flags := &demoFlags{}

	root := &cobra.Command{
		Use:           "matdemo",
		Short:         "Exercise the dense matrix package",
		Long:          `Builds random matrices and prints the results of add, sub, multiply and transpose.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), flags)
		},
	}
	root.PersistentFlags().IntVarP(&flags.rows, "rows", "r", 2, "number of rows")
	root.PersistentFlags().IntVarP(&flags.cols, "cols", "c", 3, "number of columns")
	root.PersistentFlags().Int64VarP(&flags.seed, "seed", "s", 0, "random seed (0 = unseeded)")

	root.AddCommand(newScalarCmd(flags))

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "matdemo: "+err.Error())
		os.Exit(1)
	}
}

// runDemo builds a and b (rows×cols), then prints a, b, a+b, a-b, a×bᵀ and aᵀ.
func runDemo(w io.Writer, flags *demoFlags) error {
	if flags.rows < 0 || flags.cols < 0 {
		return fmt.Errorf("rows and cols must be >= 0, got %dx%d: %w", flags.rows, flags.cols, matrix.ErrInvalidDimension)
	}
	a := matrix.New(flags.rows, flags.cols, flags.options(0)...)
	a.Randomize()
	b := matrix.New(flags.rows, flags.cols, flags.options(1)...)
	b.Randomize()

	if err := a.Describe(w, "a"); err != nil {
		return err
	}
	if err := b.Describe(w, "b"); err != nil {
		return err
	}

	sum := a.Clone().(*matrix.Dense)
	if err := sum.Add(b); err != nil {
		return err
	}
	if err := sum.Describe(w, "a + b"); err != nil {
		return err
	}

	diff := a.Clone().(*matrix.Dense)
	if err := diff.Sub(b); err != nil {
		return err
	}
	if err := diff.Describe(w, "a - b"); err != nil {
		return err
	}

	bt, err := matrix.Transposed(b)
	if err != nil {
		return err
	}
	prod, err := matrix.Multiply(a, bt)
	if err != nil {
		return err
	}
	if err = prod.Describe(w, "a x bT"); err != nil {
		return err
	}

	a.Transpose()

	return a.Describe(w, "aT")
}
