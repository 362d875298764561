// Package cli implements the ufind command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the ufind command tree. Flags are bound to the global
// viper instance.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ufind",
		Short: "Connectivity queries over edge lists",
		Long: "ufind reads an undirected graph from an edge file or SQL table and reports " +
			"connected components, minimum spanning forests and same-component queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .ufind.toml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.StringP("input", "i", "", "edge file to read")
	pf.String("format", "", "edge file format: text or toml (default: by extension)")
	pf.String("db-driver", "sqlite", "SQL driver: sqlite or postgres")
	pf.String("dsn", "", "SQL data source; when set, edges are read from --table")
	pf.String("table", "edges", "SQL table holding from_node, to_node, weight")

	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("input", pf.Lookup("input"))
	_ = viper.BindPFlag("format", pf.Lookup("format"))
	_ = viper.BindPFlag("db.driver", pf.Lookup("db-driver"))
	_ = viper.BindPFlag("db.dsn", pf.Lookup("dsn"))
	_ = viper.BindPFlag("db.table", pf.Lookup("table"))

	rootCmd.AddCommand(
		newComponentsCmd(),
		newMSTCmd(),
		newQueryCmd(),
		newClusterCmd(),
	)
	return rootCmd
}

func initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	} else {
		viper.SetConfigName(".ufind")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = viper.ReadInConfig()
	}

	viper.SetEnvPrefix("UFIND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	return nil
}
