package aoc

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// command builds the command line: the root runs every day (or --day),
// and each day gets a dayNN subcommand taking an optional input file.
func (r *runner) command() *cobra.Command {
	var (
		o          runOptions
		dayNum     int
		configPath string
	)
	setup := func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		r.cfg = cfg
		r.out = cmd.OutOrStdout()
		if len(args) > 0 {
			o.inputPath = args[0]
		}
		return nil
	}

	root := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d [input]", r.year),
		Short:         fmt.Sprintf("Run Advent of Code %d solvers", r.year),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(cmd, args); err != nil {
				return err
			}
			if dayNum != -1 {
				d, ok := r.days[dayNum]
				if !ok {
					return fmt.Errorf("no day %d", dayNum)
				}
				return r.runDay(d, o)
			}
			if o.inputPath != "" {
				return fmt.Errorf("an input file needs --day")
			}
			ran := false
			for _, n := range r.dayNums() {
				d := r.days[n]
				if o.part != "" && !d.hasPart(o.part) {
					continue
				}
				if err := r.runDay(d, o); err != nil {
					return err
				}
				fmt.Fprintln(r.out)
				ran = true
			}
			if !ran && o.part != "" {
				return fmt.Errorf("no day has part %s", o.part)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.part, "part", "", "part to run")
	flags.BoolVar(&o.onlySample, "sample", false, "only run sample")
	flags.BoolVar(&o.skipSample, "skip-sample", false, "skip sample")
	flags.BoolVar(&o.debug, "debug", false, "debug mode")
	flags.StringVar(&configPath, "config", "", "config file (default "+ConfigFileName+")")
	root.Flags().IntVar(&dayNum, "day", -1, "day to run")
	root.MarkFlagsMutuallyExclusive("sample", "skip-sample")

	for _, n := range r.dayNums() {
		d := r.days[n]
		root.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("day%02d [input]", n),
			Short: "Run day " + strconv.Itoa(n),
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := setup(cmd, args); err != nil {
					return err
				}
				return r.runDay(d, o)
			},
		})
	}
	return root
}
