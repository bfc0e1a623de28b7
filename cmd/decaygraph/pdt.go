package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) pdtCmd() *cobra.Command {
	var (
		file, driver, dsn string
		quiet             bool
	)
	cmd := &cobra.Command{
		Use:   "pdt",
		Short: "Print or check the particle table",
		Long: `Loads the particle table from --file, from --driver/--dsn, from the
configuration, or the built-in copy, and prints it as "code name" lines.
With --quiet only the validation result is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("file") {
				cfg.Pdt.File = file
			}
			if f.Changed("driver") {
				cfg.Pdt.Driver = driver
			}
			if f.Changed("dsn") {
				cfg.Pdt.DSN = dsn
			}
			if cfg.Pdt.File != "" && cfg.Pdt.DSN != "" {
				return fmt.Errorf("pdt: set either --file or --dsn")
			}

			t, err := particleTable(cmd.Context(), cfg.Pdt)
			if err != nil {
				return err
			}
			a.logger.Info("particle table loaded", zap.Int("particles", t.Len()))
			if quiet {
				return nil
			}
			for _, code := range t.Codes() {
				name, _ := t.Name(code)
				fmt.Fprintf(a.out, "%d\t%s\n", code, name)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&file, "file", "", "particle table text file")
	f.StringVar(&driver, "driver", "sqlite3", "database driver (sqlite3 or mysql)")
	f.StringVar(&dsn, "dsn", "", "database DSN")
	f.BoolVarP(&quiet, "quiet", "q", false, "only validate")

	return cmd
}
