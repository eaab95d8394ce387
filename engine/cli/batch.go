package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/systems"
)

const watchDebounce = 200 * time.Millisecond

type batchRunner struct {
	path      string
	out       string
	evaluator *systems.Evaluator
	jobs      *systems.JobSystem
}

func newBatchCommand(a *app) *cobra.Command {
	var (
		out   string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Evaluate every call of a TOML batch file on the job system",
		Example: `  icemath batch examples/sample.toml
  icemath batch examples/sample.toml --out results.toml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			js, err := systems.NewJobSystemFromConfig(a.config.Jobs)
			if err != nil {
				return err
			}
			defer js.Shutdown()

			r := &batchRunner{
				path:      args[0],
				out:       out,
				evaluator: systems.NewEvaluator(systems.NewRegistry()),
				jobs:      js,
			}

			ctx := cmd.Context()
			if err := r.run(ctx, cmd.OutOrStdout()); err != nil && !watch {
				return err
			}
			if !watch {
				return nil
			}
			return r.watch(ctx, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the results to this TOML file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the batch whenever the file changes")
	return cmd
}

func (r *batchRunner) run(ctx context.Context, w io.Writer) error {
	file, err := systems.LoadBatch(r.path)
	if err != nil {
		return err
	}

	result, runErr := r.evaluator.RunBatch(ctx, file, r.jobs)
	if result != nil {
		printBatch(w, result)
		if r.out != "" {
			if err := result.Save(r.out); err != nil {
				return err
			}
			core.LogInfo("results written to %s", r.out)
		}
	}
	return runErr
}

func (r *batchRunner) watch(ctx context.Context, w io.Writer) error {
	watcher, err := core.NewFileWatcher(r.path, watchDebounce, func(string) {
		if err := r.run(ctx, w); err != nil {
			core.LogError("batch %s: %s", r.path, err.Error())
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	core.LogInfo("watching %s, press ctrl+c to stop", r.path)
	watcher.Run(ctx)
	return nil
}

func printBatch(w io.Writer, result *systems.BatchResult) {
	printTitle(w, fmt.Sprintf("%s (%d calls, %d failed, %.3f ms)",
		result.Name, len(result.Results), result.Failures, result.ElapsedMS))
	for _, res := range result.Results {
		if res.Error != "" {
			printError(w, res.Fn, res.Args, res.Error)
			continue
		}
		printValue(w, res.Fn, res.Args, res.Value)
	}
}
