package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/quill/internal/share"
)

func newShowCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note",
		Long:  `Show prints the body of a note as stored, or the full note with --json.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			notes, logger, _, err := openStore(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()
			defer func() { _ = notes.Close() }()

			n, err := notes.Fetch(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("show note %d: %w", id, err)
			}

			if asJSON {
				item := metadataJSON(n.Metadata)
				item.Text = &n.Contents.Text
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(item)
			}
			return share.WriterSharer{W: cmd.OutOrStdout()}.Share(n.Contents.Text)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
