package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "emoarc <input.srt>",
		Short:        "Chart the emotional arc of a video transcript",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.PersistentFlags().String("config", "", "Path to YAML config file")
	root.PersistentFlags().String("out", "out", "Output directory")
	root.PersistentFlags().Int("chunk", 30, "Window duration in seconds")
	root.PersistentFlags().String("scorer", "lexicon", "Sentiment backend: lexicon, openai or gemini")
	root.PersistentFlags().Int("concurrency", 4, "Max concurrent scoring calls")

	watchCmd := &cobra.Command{
		Use:          "watch <dir>",
		Short:        "Watch a directory and build an arc for each new .srt file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0])
		},
	}
	root.AddCommand(watchCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
