package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/not-rogue/config"
)

func newSchemaCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.MarshalSchema()
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return writeSchema(outPath, data)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write the schema to this path instead of stdout")
	return cmd
}

func writeSchema(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
