package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/math"
)

func newRandCommand(_ *app) *cobra.Command {
	var (
		count int
		seed  uint64
		lower float64
		upper float64
		ints  bool
	)

	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Draw numbers from the Mersenne Twister",
		Long: `Draws from the process-wide generator. Without bounds values are in [0, 1).
With --int the bounds are inclusive integers, otherwise [min, max).`,
		Example: `  icemath rand -n 5 --seed 5489
  icemath rand --int --min 1 --max 6 -n 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("-n %d: %w", count, core.ErrDomain)
			}
			if cmd.Flags().Changed("seed") {
				math.SeedRandom(seed)
			}
			bounded := cmd.Flags().Changed("min") || cmd.Flags().Changed("max")

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				switch {
				case ints:
					fmt.Fprintln(out, math.RandomInRange(int64(lower), int64(upper)))
				case bounded:
					fmt.Fprintln(out, formatFloat(math.FRandomInRange(lower, upper)))
				default:
					fmt.Fprintln(out, formatFloat(math.Random()))
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&count, "count", "n", 1, "how many numbers to draw")
	f.Uint64Var(&seed, "seed", 0, "reseed the generator before drawing")
	f.Float64Var(&lower, "min", 0, "lower bound")
	f.Float64Var(&upper, "max", 1, "upper bound")
	f.BoolVar(&ints, "int", false, "draw integers in [min, max]")
	return cmd
}
