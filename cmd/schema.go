// Package cmd implements the command-line interface for shikigo.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/shikigo-cli/shikigo/shikimori"
)

// schemaTargets maps entity names to reflectable zero values.
var schemaTargets = map[string]any{
	"anime":     &shikimori.Anime{},
	"manga":     &shikimori.Manga{},
	"character": &shikimori.Character{},
	"person":    &shikimori.Person{},
	"user-rate": &shikimori.UserRate{},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd emits JSON Schema documents for the entity types, for consumers
// that validate or generate code from the client's output.
var schemaCmd = &cobra.Command{
	Use:       "schema [entity]",
	Short:     "Print the JSON Schema of an entity type",
	Args:      cobra.ExactArgs(1),
	ValidArgs: lo.Keys(schemaTargets),
	Example:   "  shikigo schema anime",
	Run: func(cmd *cobra.Command, args []string) {
		target, ok := schemaTargets[args[0]]
		if !ok {
			handleErr(fmt.Errorf("unknown entity %q, expected one of: %s", args[0], strings.Join(lo.Keys(schemaTargets), ", ")))
		}

		schema := jsonschema.Reflect(target)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
