/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/llm-d/llm-d-physical-units/internal/config"
	"github.com/llm-d/llm-d-physical-units/internal/logging"
	"github.com/llm-d/llm-d-physical-units/internal/metrics"
	"github.com/llm-d/llm-d-physical-units/pkg/constants"
	"github.com/llm-d/llm-d-physical-units/pkg/units"
)

const metricsFileFlag = "metrics-file"

// app holds the state shared by all subcommands once the root command has run its setup.
type app struct {
	fs        afero.Fs
	v         *viper.Viper
	newLogger func(verbosity int) (logr.Logger, error)

	logger   logr.Logger
	gatherer *prometheus.Registry
	registry *units.Registry
	resolve  units.Disambiguator
}

func newApp(fs afero.Fs) *app {
	return &app{fs: fs, v: viper.New(), newLogger: logging.NewLogger}
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	return newApp(fs).rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dimensions",
		Short:        "Inspect SI dimensions and the names registered for them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeMetrics(cmd)
		},
	}
	if err := config.BindFlags(root.PersistentFlags(), a.v); err != nil {
		panic(err)
	}
	root.PersistentFlags().String(metricsFileFlag, "", "write registry metrics in Prometheus text format to this file on exit")

	root.AddCommand(
		newClassifyCommand(a),
		newResolveCommand(a),
		newLookupCommand(a),
		newListCommand(a),
		newConstantsCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.v)
	if err != nil {
		return err
	}
	logger, err := a.newLogger(settings.Verbosity())
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	a.logger = logging.Log.WithName("dimensions")

	cfg, err := settings.RegistryConfig(a.fs)
	if err != nil {
		return err
	}

	a.gatherer = prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(a.gatherer)
	if err != nil {
		return err
	}

	a.registry, err = config.BuildRegistry(cmd.Context(), cfg, config.NewSource(a.fs, cfg), a.logger, units.WithObserver(recorder))
	if err != nil {
		return err
	}

	if cfg.Strategy() == units.PromptStrategy {
		a.resolve = units.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
	} else if a.resolve, err = units.NewDisambiguator(cfg.Strategy()); err != nil {
		return err
	}

	a.logger.V(logging.DEBUG).Info("Command ready",
		"command", cmd.Name(),
		"configFile", settings.ConfigFile,
		"dimensions", a.registry.Len())
	return nil
}

func (a *app) writeMetrics(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString(metricsFileFlag)
	if err != nil || path == "" {
		return err
	}
	if err := prometheus.WriteToTextfile(path, a.gatherer); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

func newClassifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify EXPONENT...",
		Short: "List every registered dimension matching an exponent vector",
		Long: "List every registered dimension matching an exponent vector, in registry order.\n" +
			"Exponents follow the order kg m s K A mol cd and may be separated by spaces or commas.",
		Example: "  dimensions classify 1,1,-2\n  dimensions classify -- 0 1 -1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseUnit(args)
			if err != nil {
				return err
			}
			for _, name := range a.registry.Classify(u) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve EXPONENT...",
		Short: "Reduce an exponent vector to a single dimension name",
		Long: "Reduce an exponent vector to a single dimension name. Vectors matching several\n" +
			"names are settled by the --disambiguation strategy.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseUnit(args)
			if err != nil {
				return err
			}
			name, err := a.registry.ResolveName(u, a.resolve)
			if err != nil {
				return err
			}
			if name == "" {
				return fmt.Errorf("no dimension registered for %q", u.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newLookupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup NAME",
		Short: "Show the exponent vector registered under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], describe(u))
			return nil
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIMENSION\tDISPLAY NAME")
			for _, e := range a.registry.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Dimension, e.DisplayName)
			}
			return w.Flush()
		},
	}
}

func newConstantsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the built-in physical constants and the dimensions they classify as",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CONSTANT\tVALUE\tDIMENSIONS")
			for _, c := range constants.All() {
				fmt.Fprintf(w, "%s\t%g %s\t%s\n", c.Name(), c.Value(), c.Unit(), joinNames(a.registry.Classify(c.Unit())))
			}
			return w.Flush()
		},
	}
}
