package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var paths pathFlags
	var verbosity int

	ctx := newCommandContext(&configFlag, &paths, &verbosity)

	rootCmd := &cobra.Command{
		Use:   "corhoh",
		Short: "Build the CORHOH TEI corpus from metadata and transcripts",
		Long: "corhoh reads the oral-history metadata table and the numbered transcript\n" +
			"directory, segments every transcript into question and answer turns, and\n" +
			"writes a single TEI XML corpus.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&paths.metadata, "metadata", "", "Metadata table (default Cor_META_updated.csv)")
	flags.StringVar(&paths.textsDir, "texts-dir", "", "Transcript directory (default 500_numbered)")
	flags.StringVarP(&paths.output, "output", "o", "", "Output TEI file (default CORHOH.xml)")
	flags.StringVar(&paths.index, "index", "", "Also export the corpus to this SQLite database")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
