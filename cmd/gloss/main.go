package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/gloss/internal/buffer"
	"github.com/sant0-9/gloss/internal/config"
	"github.com/sant0-9/gloss/internal/logging"
	"github.com/sant0-9/gloss/internal/tui"
)

var version = "dev"

var (
	configFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "gloss [file]",
	Short: "Annotate paragraphs, then let a model rework them",
	Long: `gloss is a terminal editor for working a draft over with a language
model. Attach notes to a paragraph, embed {inline instructions}, and run
actions that rewrite, translate, expand, or continue the text in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return run(path)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gloss " + version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.config/gloss/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "verbose logging")
	rootCmd.AddCommand(versionCmd)
}

func run(path string) error {
	var cfg *config.Config
	var err error
	if configFlag != "" {
		cfg, err = config.LoadFrom(configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logger *zap.Logger
	if cfg != nil {
		logPath, err := cfg.LogPath()
		if err == nil {
			logger, _ = logging.New(logPath, debugFlag || cfg.Debug)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	buf, err := buffer.Load(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	app := tui.NewApp(cfg, buf, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
