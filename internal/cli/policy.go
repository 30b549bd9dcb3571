package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/javapkg/builddep/pkg/config"
	"github.com/javapkg/builddep/pkg/errors"
)

const formatTOML = "toml"

func (c *CLI) policyCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Print the effective extraction policy",
		Long: `Print the exclusions, common plugins, scopes and dependency types in effect
after applying the configuration file.

The TOML output is a complete configuration: saved to a file and passed with
--config it reproduces the same policy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPolicy(cmd.Context(), cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTOML, "output format: toml, json")
	return cmd
}

func (c *CLI) runPolicy(ctx context.Context, w io.Writer, format string) error {
	if err := errors.ValidateFormat(format, formatTOML, formatJSON); err != nil {
		return err
	}

	x, reg, err := c.newExtractor()
	if err != nil {
		return err
	}
	snap := config.Snapshot(x.Policy(), x.Exclusions(), reg)

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	return snap.Encode(w)
}
