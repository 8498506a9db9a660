// Command qlog exercises the qlog logging façade from the command line:
// it validates configuration files, prints their JSON Schema, and emits
// sample messages so decoration and filtering can be inspected.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/qlog"
	"go.jacobcolvin.com/qlog/version"
)

func main() {
	cfg := qlog.NewConfig()

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "qlog",
		Short: "Inspect and exercise qlog logging configuration",
		Long: `qlog emits sample messages through the logging façade so that level
filtering, per-severity decoration, and color output can be inspected with
the exact flags and configuration files an embedding application would use.`,
		Version:       version.Short(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML decoration config file")

	completionErr := cfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(
		newDemoCmd(cfg, &configPath),
		newCheckCmd(),
		newSchemaCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newDemoCmd(cfg *qlog.Config, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Emit sample messages at every severity",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo(cfg, *configPath)
		},
	}
}

func runDemo(cfg *qlog.Config, configPath string) error {
	closer, err := cfg.Apply()
	if err != nil {
		return err
	}
	defer closer.Close()

	if configPath != "" {
		fileCfg, err := qlog.LoadConfigFile(configPath)
		if err != nil {
			return err
		}

		if err := fileCfg.Apply(); err != nil {
			return err
		}
	}

	qlog.Debug.Println("resolving configuration")
	qlog.Trace.Println("entering demo()")
	qlog.Info.Println("connection established")
	qlog.Warning.Println("payload is unusually large")
	qlog.Error.Log("giving up after ").Log(3).Log(" attempts").Log(qlog.Endl).End()

	// Conditional suppression: only the first of these two is emitted.
	qlog.Error.If(true).Println("this condition held")
	qlog.Error.If(false).Println("this one did not")

	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.yaml>",
		Short: "Validate a decoration config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := qlog.LoadConfigFile(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s: ok\n", args[0])

			return nil
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for decoration config files",
		RunE: func(_ *cobra.Command, _ []string) error {
			schema, err := qlog.ConfigSchema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding schema: %w", err)
			}

			out = append(out, '\n')

			_, err = os.Stdout.Write(out)

			return err
		},
	}
}
