// internal/app/batch.go
package app

import (
	"github.com/spf13/cobra"

	"seqedit/internal/appcore"
	"seqedit/internal/cmdutil"
	"seqedit/internal/config"
)

func newBatchCmd(st *runState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Apply the edit jobs listed in a YAML manifest",
		Long: `Apply every job in a YAML manifest. Jobs run in parallel and independently:
a job that fails is reported and the others still run. One JSON line per job
is written to stdout in manifest order; the exit code is 1 if any job failed.

Manifest format:

  line_width: 60                 # optional
  jobs:
    - id: del-a                  # optional, a UUID is assigned otherwise
      input: a.fa                # relative paths are relative to the manifest
      output: out/a.fa           # optional, default <input stem>.<id>.fa
      op: delete 3 5
    - input: b.fa
      ops: ["delete 5 10", "insert 20 GGGG"]   # applied in order`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st.ran = true
			if !st.cfg.Stdout() {
				cmdutil.Warnf(st.stderr, st.cfg.Quiet, "--output is ignored in batch mode; set output per job")
			}
			return appcore.RunBatch(cmd.Context(), st.stdout, st.stderr, appcore.BatchOptions{
				Manifest:  args[0],
				Threads:   st.cfg.Threads,
				LineWidth: st.cfg.LineWidth,
				Quiet:     st.cfg.Quiet,
				Verbose:   st.cfg.Verbose,
			})
		},
	}
	cmd.Flags().IntP(config.KeyThreads, "t", 0, "worker goroutines (0 = all CPUs)")
	return cmd
}
