package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/resultmap/pkg/foobar"
	"github.com/ib-77/resultmap/pkg/rop"
	"github.com/ib-77/resultmap/pkg/rop/solo"
)

const (
	modeAll  = "all"
	modeEach = "each"
)

type checkOptions struct {
	*rootOptions
	inputFile string
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "check [values...]",
		Short: "Look up and validate the bar of every foo",
		Long: `Every positional value becomes a foo holding a bar with that text; the
none token (default "-") becomes a foo without a bar. Values from --input are
read first, as a YAML list where null entries are empty foos.`,
		Example: `  resultmap check bar bar - bar
  resultmap check --mode each bar foo
  resultmap check --input foos.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "input", "i", "", "YAML file with a list of values")
	cmd.Flags().StringP(cfgKeyMode, "m", modeAll, "aggregation mode: all, each")
	cmd.Flags().StringP(cfgKeyFormat, "f", formatText, "output format: text, json, yaml")
	_ = root.cfg.BindPFlag(cfgKeyMode, cmd.Flags().Lookup(cfgKeyMode))
	_ = root.cfg.BindPFlag(cfgKeyFormat, cmd.Flags().Lookup(cfgKeyFormat))

	return cmd
}

func (o *checkOptions) run(ctx context.Context, cmd *cobra.Command, args []string) error {
	mode := o.cfg.GetString(cfgKeyMode)
	format := o.cfg.GetString(cfgKeyFormat)

	values, err := o.values(args)
	if err != nil {
		return err
	}
	foos := foobar.FromValues(values)
	slog.Debug("checking foos", "count", len(foos), "mode", mode, "format", format)

	var rep report
	switch mode {
	case modeAll:
		rep = allReport(ctx, foobar.LookupAll(ctx, foos))
	case modeEach:
		rep = eachReport(ctx, foobar.LookupEach(ctx, foos))
	default:
		return fmt.Errorf("unknown mode %q (want %s or %s)", mode, modeAll, modeEach)
	}

	if err := render(cmd.OutOrStdout(), format, rep); err != nil {
		return err
	}

	if mode == modeAll && !rep.OK {
		return fmt.Errorf("lookup failed: %s", rep.Error)
	}
	return nil
}

func (o *checkOptions) values(args []string) ([]*string, error) {
	var values []*string

	if o.inputFile != "" {
		data, err := os.ReadFile(o.inputFile)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parsing input %s: %w", o.inputFile, err)
		}
	}

	none := o.cfg.GetString(cfgKeyNoneToken)
	for _, arg := range args {
		arg := arg
		if arg == none {
			values = append(values, nil)
			continue
		}
		values = append(values, &arg)
	}
	return values, nil
}

func allReport(ctx context.Context, res rop.Result[[]string]) report {
	return solo.Finally(ctx, res,
		func(_ context.Context, values []string) report {
			return report{Mode: modeAll, OK: true, Values: values}
		},
		func(_ context.Context, err error) report {
			return report{Mode: modeAll, Error: err.Error()}
		},
		func(_ context.Context, err error) report {
			return report{Mode: modeAll, Error: err.Error(), Cancelled: true}
		})
}

func eachReport(ctx context.Context, results []rop.Result[string]) report {
	rep := report{Mode: modeEach, OK: true, Entries: make([]entry, 0, len(results))}

	for i, res := range results {
		res = solo.DoubleTee(ctx, res,
			nil,
			func(_ context.Context, err error) { slog.Debug("lookup failed", "index", i, "error", err) },
			func(_ context.Context, err error) { slog.Debug("lookup cancelled", "index", i, "error", err) })

		e := solo.Finally(ctx, res,
			func(_ context.Context, v string) entry { return entry{Value: v} },
			func(_ context.Context, err error) entry { return entry{Error: err.Error()} },
			func(_ context.Context, err error) entry { return entry{Error: err.Error(), Cancelled: true} })
		e.Index = i

		rep.OK = rep.OK && res.IsSuccess()
		rep.Entries = append(rep.Entries, e)
	}
	return rep
}
