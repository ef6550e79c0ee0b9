// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"sharenotes/cmd/client/cmd/auth"
	"sharenotes/cmd/client/cmd/note"
	"sharenotes/cmd/client/cmd/request"
	"sharenotes/cmd/client/cmd/share"
	"sharenotes/cmd/client/cmd/types"
	"sharenotes/cmd/client/cmd/user"
	"sharenotes/internal/app/client"
	"sharenotes/internal/app/client/config"
	"sharenotes/internal/utils/logger"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	serverURL string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "sharenotes",
	Short: "sharenotes - client for the notes sharing service",
	Long: `sharenotes is a command-line client for the notes sharing service.

It manages your account, your notes, note exports, and the connection
requests you exchange with other users to gain sharing rights. After a
login the session token is persisted locally, so subsequent commands run
authenticated until you log out.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = logger.EnvLocal
	}

	log = logger.New(cfg.Env)

	app := client.New(cfg, log)
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".sharenotes"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file found, defaults and environment apply.
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "service address (host:port)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(auth.Cmd)
	rootCmd.AddCommand(note.Cmd)
	rootCmd.AddCommand(request.Cmd)
	rootCmd.AddCommand(share.Cmd)
	rootCmd.AddCommand(user.Cmd)
}
