package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/quill/internal/note"
)

func newNewCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "new [text...]",
		Short: "Create a note",
		Long: `New stores a note and prints its id. The arguments form the text; with no
arguments the text is read from stdin. The first non-blank line becomes the title.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				body, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(body), "\n")
			}

			notes, logger, _, err := openStore(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()
			defer func() { _ = notes.Close() }()

			id, err := notes.Save(cmd.Context(), 0, note.DeriveTitle(text), text)
			if err != nil {
				return fmt.Errorf("save note: %w", err)
			}
			logger.Debug("note created", "id", id)

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
