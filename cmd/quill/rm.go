package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Long:    `Rm permanently removes a note. Removing a note that does not exist is not an error.`,
		Args:    cobra.ExactArgs(1),
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

			if err := notes.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete note %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %d\n", id)
			return nil
		},
	}
}
