package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dayanaadylkhanova/seller-forecast/internal/adapter/report"
	"github.com/dayanaadylkhanova/seller-forecast/internal/adapter/upstream"
	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/dayanaadylkhanova/seller-forecast/internal/forecast"
	"github.com/dayanaadylkhanova/seller-forecast/pkg/logger"
	"github.com/dayanaadylkhanova/seller-forecast/pkg/validator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSummarizeCmd(v *viper.Viper) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a prediction payload read from a file or stdin.",
		Example: `  forecastctl summarize --file predictions.json --timeframe 6months
  cat predictions.json | forecastctl summarize -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, tf, err := resolve(v)
			if err != nil {
				return err
			}
			p, err := readPayload(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), o, "", forecast.Summarize(p, tf))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "payload json file, - for stdin")
	return cmd
}

func newFetchCmd(v *viper.Viper) *cobra.Command {
	var seller string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch predictions from the forecasting API and summarize them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, tf, err := resolve(v)
			if err != nil {
				return err
			}
			s, err := fetchSummary(cmd.Context(), o, seller, tf)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), o, seller, s)
		},
	}
	cmd.Flags().StringVarP(&seller, "seller", "s", "me", "seller id")
	return cmd
}

func newExportCmd(v *viper.Viper) *cobra.Command {
	var file, seller, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a forecast summary to an xlsx workbook.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, tf, err := resolve(v)
			if err != nil {
				return err
			}

			var s entity.Summary
			if file != "" {
				p, err := readPayload(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				s = forecast.Summarize(p, tf)
			} else {
				if s, err = fetchSummary(cmd.Context(), o, seller, tf); err != nil {
					return err
				}
			}

			if out == "" {
				out = "forecast-" + tf.String() + ".xlsx"
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := report.WriteSummaryXLSX(f, seller, s); err != nil {
				_ = f.Close()
				return fmt.Errorf("write %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "payload json file instead of fetching, - for stdin")
	cmd.Flags().StringVarP(&seller, "seller", "s", "me", "seller id")
	cmd.Flags().StringVar(&out, "out", "", "output path (default forecast-<timeframe>.xlsx)")
	return cmd
}

func resolve(v *viper.Viper) (options, entity.Timeframe, error) {
	o, err := loadOptions(v)
	if err != nil {
		return o, 0, err
	}
	tf, err := entity.ParseTimeframe(o.Timeframe)
	if err != nil {
		return o, 0, fmt.Errorf("%w: %q", err, o.Timeframe)
	}
	return o, tf, nil
}

// readPayload decodes and validates a prediction payload. path "-" reads stdin.
func readPayload(stdin io.Reader, path string) (entity.PredictionPayload, error) {
	var p entity.PredictionPayload
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return p, err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return p, fmt.Errorf("decode payload: %w", err)
	}
	if err := validator.New().Struct(p); err != nil {
		return p, fmt.Errorf("invalid payload: %w", err)
	}
	return p, nil
}

func fetchSummary(ctx context.Context, o options, seller string, tf entity.Timeframe) (entity.Summary, error) {
	if o.APIURL == "" {
		return entity.Summary{}, errors.New("api url is not set: use --api-url or FORECASTCTL_API_URL")
	}
	log := logger.NewConsole(o.LogLevel)
	defer func() { _ = log.Sync() }()

	c, err := upstream.New(upstream.Config{BaseURL: o.APIURL, Token: o.Token, Timeout: o.Timeout}, log)
	if err != nil {
		return entity.Summary{}, err
	}
	p, err := c.SalesPredictions(ctx, "", seller, tf)
	if err != nil {
		return entity.Summary{}, err
	}
	return forecast.Summarize(p, tf), nil
}
