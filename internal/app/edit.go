// internal/app/edit.go
package app

import (
	"github.com/spf13/cobra"

	"seqedit/internal/appcore"
	"seqedit/internal/opspec"
)

// editSpec describes one edit subcommand. build turns the positionals after
// <input> (and the command's own flags) into an opspec argument vector.
type editSpec struct {
	cmd   *cobra.Command
	build func(cmd *cobra.Command, rest []string) []string
}

func editCommands(st *runState) []*cobra.Command {
	specs := []editSpec{
		{
			cmd: &cobra.Command{
				Use:     "delete <input> <start> <end>",
				Short:   "Delete bases start..end",
				Aliases: []string{"del", "rm"},
				Args:    cobra.ExactArgs(3),
				Example: `  seqedit delete input.fa 10 20                 # Delete bases 10-20
  seqedit -o output.fa delete input.fa 5 10     # Save result to file
  seqedit delete input.fa 5 10 | seqedit insert - 20 GGGG   # Chain operations`,
			},
			build: func(_ *cobra.Command, rest []string) []string {
				return append([]string{opspec.OpDelete}, rest...)
			},
		},
		{
			cmd: &cobra.Command{
				Use:     "insert <input> <position> <sequence>",
				Short:   "Insert bases before position (length+1 appends)",
				Aliases: []string{"ins"},
				Args:    cobra.ExactArgs(3),
				Example: `  seqedit insert input.fa 15 ATCG               # Insert ATCG at position 15`,
			},
			build: func(_ *cobra.Command, rest []string) []string {
				return append([]string{opspec.OpInsert}, rest...)
			},
		},
		{
			cmd: &cobra.Command{
				Use:   "invert [--complement] <input> <start> <end>",
				Short: "Reverse (or reverse-complement) bases start..end",
				Args:  cobra.ExactArgs(3),
				Example: `  seqedit invert input.fa 25 35                 # Invert bases 25-35
  seqedit invert --complement input.fa 25 35    # Reverse complement bases 25-35`,
			},
			build: func(cmd *cobra.Command, rest []string) []string {
				argv := []string{opspec.OpInvert}
				if on, _ := cmd.Flags().GetBool("complement"); on {
					argv = append(argv, opspec.FlagComplement)
				}
				return append(argv, rest...)
			},
		},
		{
			cmd: &cobra.Command{
				Use:     "duplicate [--tandem] <input> <start> <end> [<position>]",
				Short:   "Copy bases start..end to position, or directly after themselves with --tandem",
				Aliases: []string{"dup"},
				Args:    cobra.RangeArgs(3, 4),
				Example: `  seqedit duplicate input.fa 10 20 50           # Duplicate bases 10-20 to position 50
  seqedit duplicate --tandem input.fa 10 20     # Tandem duplicate bases 10-20
  seqedit duplicate -td input.fa 10 20          # Same, manifest spelling`,
			},
			build: func(cmd *cobra.Command, rest []string) []string {
				argv := []string{opspec.OpDuplicate}
				if on, _ := cmd.Flags().GetBool("tandem"); on {
					argv = append(argv, opspec.FlagTandem)
				}
				return append(argv, rest...)
			},
		},
		{
			cmd: &cobra.Command{
				Use:   "copyback [--snapback] <input> <gend> <breakpoint> [<backstart>]",
				Short: "Build a 5' or 3' copyback (defective genome) product",
				Long: `Build a copyback product. For gend 5 the first <breakpoint> bases are kept
and the reverse complement of bases 1..<backstart> is appended. For gend 3
the whole reference is reverse complemented first and the same rule is
applied to it. backstart must be less than breakpoint for both ends;
--snapback folds back at the breakpoint itself (backstart = breakpoint).`,
				Aliases: []string{"cb"},
				Args:    cobra.RangeArgs(3, 4),
				Example: `  seqedit copyback input.fa 5 50 20             # 5' copyback: keep up to pos 50, append revcomp of pos 1-20
  seqedit copyback input.fa 3 50 20             # 3' copyback on the reverse-complemented genome
  seqedit copyback --snapback input.fa 5 50     # 5' snapback: keep up to pos 50, append revcomp of pos 1-50
  seqedit copyback -sb input.fa 5 50            # Same, manifest spelling`,
			},
			build: func(cmd *cobra.Command, rest []string) []string {
				argv := []string{opspec.OpCopyback}
				if on, _ := cmd.Flags().GetBool("snapback"); on {
					argv = append(argv, opspec.FlagSnapback)
				}
				return append(argv, rest...)
			},
		},
	}

	specs[2].cmd.Flags().BoolP("complement", "c", false, "reverse complement instead of plain reversal")
	specs[3].cmd.Flags().BoolP("tandem", "t", false, "insert the copy directly after the source range")
	specs[4].cmd.Flags().BoolP("snapback", "s", false, "snapback: backstart equals breakpoint")

	out := make([]*cobra.Command, 0, len(specs))
	for _, sp := range specs {
		sp := sp
		sp.cmd.SuggestionsMinimumDistance = 2
		sp.cmd.RunE = func(cmd *cobra.Command, args []string) error {
			st.ran = true
			op, err := opspec.Parse(sp.build(cmd, args[1:]))
			if err != nil {
				return appcore.Usage(err)
			}
			return appcore.RunEdit(cmd.Context(), st.stdout, st.stderr, appcore.EditOptions{
				Input:     args[0],
				Output:    st.cfg.Output,
				Format:    st.cfg.Format,
				LineWidth: st.cfg.LineWidth,
				Verbose:   st.cfg.Verbose,
			}, op)
		}
		out = append(out, sp.cmd)
	}
	return out
}
