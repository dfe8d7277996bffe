package landing

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultExportDir = "dist"

// NewRootCommand returns the landing CLI. environment seeds flag defaults;
// nil reads the process environment.
func NewRootCommand(environment map[string]string) (*cobra.Command, error) {
	cfg, err := LoadConfig(environment)
	if err != nil {
		return nil, err
	}
	var logger *zap.Logger

	root := &cobra.Command{
		Use:           "landing",
		Short:         "Rotaract DYPCOE landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			built, err := NewLogger(cfg)
			if err != nil {
				return err
			}
			logger = built
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	cfg.BindFlags(root.PersistentFlags())

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), cfg, logger)
		},
	}

	var outDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page as a static site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := Export(cmd.Context(), cfg, outDir, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(result.Files), outDir)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&outDir, "out", defaultExportDir, "Output directory")

	root.AddCommand(serve, exportCmd)
	return root, nil
}
