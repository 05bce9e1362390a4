// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seqedit/internal/appcore"
	"seqedit/internal/config"
	"seqedit/internal/opspec"
	"seqedit/internal/version"
)

// runState is shared by every command of one invocation.
type runState struct {
	stdout, stderr io.Writer

	v       *viper.Viper
	cfgFile string
	cfg     config.Config

	// set once a command body starts; errors before that came from cobra
	// itself (unknown command, bad flags, wrong arg count)
	ran bool
}

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	st := &runState{stdout: stdout, stderr: stderr, v: config.NewViper()}
	root := newRootCmd(st)
	root.SetArgs(expandShortFlags(argv))
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(parent)
	if err == nil {
		return appcore.ExitOK
	}
	if !st.ran {
		err = appcore.Usage(err)
	}
	code := appcore.ExitCode(err)
	switch code {
	case appcore.ExitOK:
		return code
	case appcore.ExitInterrupted:
		_, _ = fmt.Fprintln(stderr, "interrupted")
		return code
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	if appcore.IsUsage(err) && cmd != nil {
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return code
}

// shortFlags are the two-letter single-dash spellings of the manifest grammar.
// pflag would split them into shorthand clusters, so they are rewritten to
// their long forms up to a "--" terminator.
var shortFlags = map[string]string{
	opspec.FlagTandem:   "--tandem",
	opspec.FlagSnapback: "--snapback",
}

func expandShortFlags(argv []string) []string {
	out := make([]string, len(argv))
	copy(out, argv)
	for i, a := range out {
		if a == "--" {
			break
		}
		if long, ok := shortFlags[a]; ok {
			out[i] = long
		}
	}
	return out
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRootCmd(st *runState) *cobra.Command {
	root := &cobra.Command{
		Use:   "seqedit",
		Short: "Positional edits on a single-sequence DNA FASTA record",
		Long: `seqedit applies one positional edit to a single-record FASTA file and writes
the result as FASTA (wrapped at 70 bases by default). The header gains a
bracketed description of every edit, so chained runs keep their provenance.

All positions are 1-based and inclusive. Use "-" as the input to read from
stdin, which lets edits be chained with pipes.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(st.v, cmd.Flags()); err != nil {
				return appcore.Usage(err)
			}
			cfg, err := config.Load(st.v, st.cfgFile)
			if err != nil {
				return appcore.Usage(err)
			}
			st.cfg = cfg
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("seqedit version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringP(config.KeyOutput, "o", "", "write the result to this file instead of stdout (.gz compresses)")
	pf.String(config.KeyFormat, "fasta", "output format: fasta | json | jsonl")
	pf.Int(config.KeyLineWidth, 70, "bases per FASTA line (0 = no wrapping)")
	pf.BoolP(config.KeyQuiet, "q", false, "suppress warnings")
	pf.Bool(config.KeyVerbose, false, "report progress on stderr")
	pf.StringVar(&st.cfgFile, "config", "", "config file (yaml, toml or json)")

	for _, c := range editCommands(st) {
		root.AddCommand(c)
	}
	root.AddCommand(newBatchCmd(st), newVersionCmd(st))
	return root
}

func newVersionCmd(st *runState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st.ran = true
			_, err := fmt.Fprintf(st.stdout, "seqedit version %s\n", version.Version)
			return err
		},
	}
}
