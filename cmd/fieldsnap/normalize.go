package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/wordfields/fields"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <snapshot>",
	Short: "Apply the quirk normalization passes to a captured stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := readSnapshot(args[0])
		if err != nil {
			return err
		}
		s = fields.Normalize(s)
		return writeStream(cmd, cfg, s)
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump <snapshot>",
	Short: "Print a captured stream without normalizing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := readSnapshot(args[0])
		if err != nil {
			return err
		}
		return writeStream(cmd, cfg, s)
	},
}

func writeStream(cmd *cobra.Command, cfg Config, s fields.Stream) error {
	if cfg.JSON {
		data, err := fields.MarshalStream(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	return printStream(os.Stdout, s, useColor(cfg.Color))
}

func init() {
	normalizeCmd.Flags().Bool("json", false, "emit the stream as JSON")
	dumpCmd.Flags().Bool("json", false, "emit the stream as JSON")
}
