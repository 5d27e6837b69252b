package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpack/config"
	"github.com/katalvlaran/lvpack/gen"
	"github.com/katalvlaran/lvpack/internal/version"
	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/katalvlaran/lvpack/logging"
	"github.com/katalvlaran/lvpack/packer"
)

// state is filled by the root PersistentPreRunE and read by subcommands.
type state struct {
	cfgFile   string
	verbosity int
	cfg       *config.Config
	closeLog  func()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	st := &state{closeLog: func() {}}

	rootCmd := &cobra.Command{
		Use:   "lvpack",
		Short: MsgRootShort,
		Long: `lvpack reads packing records, one per line, and prints for each record the
indices of the items that maximise total cost without exceeding the package
weight limit. Records look like:

  81 : (1,53.38,€45) (2,88.62,€98) (3,78.48,€3)`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(st.cfgFile)
			if err != nil {
				return err
			}
			if st.verbosity > cfg.Log.Verbosity {
				cfg.Log.Verbosity = st.verbosity
			}
			st.cfg = cfg
			st.closeLog = logging.SetupWriter(cmd.ErrOrStderr(), cfg.Log.Verbosity, cfg.Log.File)
			log.Debug().Str("command", cmd.Name()).Str("config", st.cfgFile).Msg("Command started")

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			st.closeLog()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&st.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&st.cfgFile, "config", "", "Config file (.toml, .yaml or .yml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPackCmd(st))
	rootCmd.AddCommand(newGenerateCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lvpack version %s\n", version.Version)
			fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			fmt.Fprintf(out, "Built:  %s\n", version.Date)
		},
	}
}

func newPackCmd(st *state) *cobra.Command {
	var (
		skipInvalid bool
		memory      string
	)

	cmd := &cobra.Command{
		Use:   "pack FILE",
		Short: MsgPackShort,
		Long: `Pack reads FILE ("-" for stdin) and prints one line per record: the chosen
item indices joined by ", ", or "-" when nothing fits.

By default the first invalid record aborts the run and nothing is printed.
With --skip-invalid, invalid records are logged and left out of the output.`,
		Example: `  lvpack pack records.txt
  lvpack generate --records 5 | lvpack pack -
  lvpack pack --skip-invalid --memory rolling records.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := st.cfg.PackerOptions(logging.Get("packer"))
			if err != nil {
				return err
			}
			if skipInvalid {
				opts.Policy = packer.SkipInvalid
			}
			if cmd.Flags().Changed("memory") {
				mode, err := knapsack.ParseMemoryMode(memory)
				if err != nil {
					return fmt.Errorf("invalid --memory %q: %w", memory, err)
				}
				opts.Solver.MemoryMode = mode
			}

			p := packer.New(opts)
			var out string
			if args[0] == "-" {
				out, err = p.PackReader(cmd.InOrStdin())
			} else {
				out, err = p.PackFile(args[0])
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Log and skip invalid records instead of aborting")
	cmd.Flags().StringVar(&memory, "memory", knapsack.TwoTables.String(), "Solver storage: two-tables or rolling")

	return cmd
}

func newGenerateCmd(st *state) *cobra.Command {
	opts := gen.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: MsgGenerateShort,
		Long: `Generate prints random, valid records within the configured limits. The same
seed always yields the same records.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.MaxCapacity = st.cfg.Limits.Capacity
			opts.MaxWeight = st.cfg.Limits.Weight
			opts.MaxCost = st.cfg.Limits.Cost
			if st.cfg.Limits.Items > 0 && opts.Items > st.cfg.Limits.Items {
				opts.Items = st.cfg.Limits.Items
			}

			lines, err := gen.Records(opts)
			if err != nil {
				return err
			}
			genLog := logging.Get("gen")
			genLog.Debug().Int64("seed", opts.Seed).Int("records", len(lines)).Msg("Records generated")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "Random seed (0 selects the fixed default)")
	cmd.Flags().IntVar(&opts.Records, "records", opts.Records, "Number of records")
	cmd.Flags().IntVar(&opts.Items, "items", opts.Items, "Maximum items per record")

	return cmd
}

func newConfigCmd(st *state) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long: `Config prints the effective configuration after defaults, the --config file
and LVPACK_* environment variables are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := config.Encode(*st.cfg, f)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatTOML), "Output format: toml or yaml")

	return cmd
}
