// Command fieldsnap inspects captured Word field-stream snapshots. It reads
// a raw stream from a JSON or YAML capture, optionally runs the quirk
// normalizer over it, and prints the result for diffing and debugging.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fieldsnap",
	Short: "Inspect and normalize captured Word field-stream snapshots",
	Long: `fieldsnap works on field-stream captures taken from a Microsoft Word
document's UI Automation text range. It decodes a snapshot file (JSON or
YAML), optionally applies the same normalization passes the screen reader
applies at runtime, and prints the resulting stream.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(dumpCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log normalization diagnostics to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
