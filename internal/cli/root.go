// Package cli implements storectl, a terminal front end for the store
// dashboard's row actions.
package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/javajoker/store-admin/internal/dashboard"
)

type Options struct {
	In         io.Reader
	Out        io.Writer
	HTTPClient *http.Client
}

type settings struct {
	APIURL       string
	DashboardURL string
	Token        string
	Store        string
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Manage store dashboard rows from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, configFile)
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Out)

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $HOME/.storectl.yaml)")
	flags.String("api-url", "http://localhost:8080", "store API base URL")
	flags.String("dashboard-url", "http://localhost:3000", "dashboard base URL used for edit links")
	flags.String("token", "", "bearer token")
	flags.String("store", "", "store id")
	_ = v.BindPFlags(flags)

	for _, resource := range dashboard.Resources() {
		root.AddCommand(newResourceCommand(resource, v, opts))
	}

	return root
}

func loadConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix("STORECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(".storectl")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func currentSettings(v *viper.Viper) (settings, error) {
	s := settings{
		APIURL:       v.GetString("api-url"),
		DashboardURL: strings.TrimRight(v.GetString("dashboard-url"), "/"),
		Token:        v.GetString("token"),
		Store:        v.GetString("store"),
	}
	if s.Store == "" {
		return s, errors.New("store id is required (--store or STORECTL_STORE)")
	}
	return s, nil
}
