// Command factschema emits the JSON schema for the authored facts file,
// so editors can validate entries before the game loads them.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/synthdrive/facts"
)

var outPath string

var rootCmd = &cobra.Command{
	Use:   "factschema",
	Short: "Generate the JSON schema for the authored facts file",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema := buildSchema()

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		data = append(data, '\n')

		if outPath == "" {
			_, err := os.Stdout.Write(data)
			return err
		}
		return writeSchema(outPath, data)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&outPath, "out", "", "path to write the schema (default stdout)")
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(facts.FactFile))
	schema.Title = "Synthdrive Authored Facts"
	schema.Description = "Validates hand-written portfolio facts passed via --facts"
	return schema
}

// writeSchema replaces the target atomically so a watching editor never
// reads a half-written file
func writeSchema(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
