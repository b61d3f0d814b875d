package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spliit/internal/buildinfo"
	"github.com/cleared-dev/spliit/internal/config"
	"github.com/cleared-dev/spliit/internal/logging"
	"github.com/cleared-dev/spliit/internal/spliit"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	groupID    string
	baseURL    string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "spliit",
		Short:   "Shared expenses on Spliit from the command line",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ./"+config.DefaultPath+" if present)")
	flags.StringVar(&opts.groupID, "group", "", "Spliit group ID (overrides "+config.EnvGroupID+")")
	flags.StringVar(&opts.baseURL, "base-url", "", "Spliit tRPC endpoint (overrides "+config.EnvBaseURL+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(
		newGroupCommand(opts),
		newParticipantsCommand(opts),
		newExpensesCommand(opts),
		newAddCommand(opts),
		newCategoriesCommand(),
		newConfigCommand(opts),
	)

	return rootCmd
}

// resolve returns the effective configuration with flag overrides applied.
func (o *globalOptions) resolve() (*config.Config, error) {
	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.groupID != "" {
		cfg.GroupID = o.groupID
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// client builds a Spliit client from the resolved configuration and installs
// the CLI logger on stderr.
func (o *globalOptions) client(cmd *cobra.Command) (*spliit.Client, error) {
	cfg, err := o.resolve()
	if err != nil {
		return nil, err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := logging.Setup(cmd.ErrOrStderr(), level)

	return spliit.New(spliit.Options{
		GroupID:    cfg.GroupID,
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		MaxPages:   cfg.MaxPages,
		Logger:     logger,
	})
}
