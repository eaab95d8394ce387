package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/systems"
)

func parseArgs(args []string) ([]float64, error) {
	var firstErr error
	values := lo.Map(args, func(s string, i int) float64 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("argument %d %q: %w", i+1, s, core.ErrDomain)
		}
		return v
	})
	return values, firstErr
}

func newEvalCommand(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <fn> [args...]",
		Short: "Evaluate one function, see `icemath funcs`",
		Example: `  icemath eval sqrt 2
  icemath eval pow 2 0.5
  icemath eval binomial 52 5
  icemath eval atan2 -1 -1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			v, err := systems.NewRegistry().Call(args[0], values)
			if err != nil {
				return err
			}
			printValue(cmd.OutOrStdout(), args[0], values, v)
			return nil
		},
	}
	// everything after the function name is an argument, so negative
	// numbers are not mistaken for flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newFuncsCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List the functions known to eval and batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := systems.NewRegistry()
			out := cmd.OutOrStdout()

			byArity := lo.GroupBy(reg.Names(), func(name string) int {
				f, _ := reg.Lookup(name)
				return f.Arity
			})
			arities := lo.Keys(byArity)
			sort.Ints(arities)

			for _, arity := range arities {
				printTitle(out, fmt.Sprintf("%d argument(s)", arity))
				for _, name := range byArity[arity] {
					f, _ := reg.Lookup(name)
					fmt.Fprintf(out, "  %-12s %s\n", nameStyle.Render(name), mutedStyle.Render(f.Doc))
				}
			}
			return nil
		},
	}
}
