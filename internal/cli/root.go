// Package cli implements forecastctl, a command line front end for the
// forecast aggregator.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options is the resolved configuration: defaults, config file, FORECASTCTL_* env and flags.
type options struct {
	APIURL    string        `mapstructure:"api-url"`
	Token     string        `mapstructure:"token"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Timeframe string        `mapstructure:"timeframe"`
	Output    string        `mapstructure:"output"`
	Color     bool          `mapstructure:"color"`
	LogLevel  string        `mapstructure:"log-level"`
}

const (
	outputTable = "table"
	outputJSON  = "json"
)

// NewRootCmd builds the command tree. Results go to out.
func NewRootCmd(out io.Writer, version string) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "forecastctl",
		Short:         "Summarize seller revenue forecasts.",
		Long:          `forecastctl buckets predicted revenue, computes growth and category shares and prints recommendations.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return readConfig(v)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./.forecastctl.yaml or $HOME/.forecastctl.yaml)")
	pf.String("api-url", "", "forecasting API base url")
	pf.String("token", "", "JWT for the forecasting API")
	pf.Duration("timeout", 10*time.Second, "upstream request timeout")
	pf.StringP("timeframe", "t", "1year", "6months, 1year or 5years")
	pf.StringP("output", "o", outputTable, "table or json")
	pf.Bool("color", true, "colorize the growth rate")
	pf.String("log-level", "warn", "debug, info, warn or error")
	_ = v.BindPFlags(pf)

	v.SetEnvPrefix("FORECASTCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newSummarizeCmd(v),
		newFetchCmd(v),
		newExportCmd(v),
	)
	return root
}

func readConfig(v *viper.Viper) error {
	if f := v.GetString("config"); f != "" {
		v.SetConfigFile(f)
	} else {
		v.SetConfigName(".forecastctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

func loadOptions(v *viper.Viper) (options, error) {
	var o options
	if err := v.Unmarshal(&o); err != nil {
		return o, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	switch o.Output {
	case outputTable, outputJSON:
	default:
		return o, fmt.Errorf("unknown output %q, want table or json", o.Output)
	}
	return o, nil
}
