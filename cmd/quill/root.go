package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/quill/internal/app"
	"github.com/five82/quill/internal/config"
	"github.com/five82/quill/internal/logging"
	"github.com/five82/quill/internal/store"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	prefsPath  string
	poll       int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "quill",
		Short: "A terminal notebook",
		Long: `quill keeps plain-text notes in a local SQLite database or a folder of
Markdown files. Run without arguments to open the note browser.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				PollEvery:  flags.poll,
				Verbose:    flags.verbose,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/quill/prefs.toml)")
	pf.IntVar(&flags.poll, "poll", 0, "list refresh interval in seconds (default from config)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newListCmd(flags),
		newShowCmd(flags),
		newNewCmd(flags),
		newRmCmd(flags),
		newVersionCmd(),
	)
	return root
}

// openStore loads the configuration and opens the note store for a one-shot
// command. Logs go to stderr; the caller closes both.
func openStore(cmd *cobra.Command, flags *globalFlags) (store.Store, *logging.Logger, config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Writer:  cmd.ErrOrStderr(),
		Level:   "warn",
		Verbose: flags.verbose,
		Prefix:  "quill",
	})
	if err != nil {
		return nil, nil, config.Config{}, err
	}

	notes, err := app.OpenStore(cmd.Context(), cfg, logger.Logger)
	if err != nil {
		_ = logger.Close()
		return nil, nil, config.Config{}, err
	}
	return notes, logger, cfg, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}
