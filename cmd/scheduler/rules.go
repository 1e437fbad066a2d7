package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/conference-scheduler/internal/observability"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the constraints in evaluation order",
	RunE:  runRules,
}

var rulesFlags sharedFlags

func init() {
	rulesFlags.register(rulesCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRules(_ *cobra.Command, _ []string) error {
	cfg, err := rulesFlags.resolve()
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRules(engine.Rules())
		_, _ = fmt.Fprintf(os.Stdout, "Tag policy: %s\n", cfg.TagPolicy)
		return nil
	}
	for _, rule := range engine.Rules() {
		_, _ = fmt.Fprintln(os.Stdout, rule)
	}
	return nil
}
