package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/five82/quill/internal/i18n"
	"github.com/five82/quill/internal/note"
)

// noteJSON is the --json shape shared by list and show.
type noteJSON struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
	Text    *string   `json:"text,omitempty"`
}

func metadataJSON(m note.Metadata) noteJSON {
	return noteJSON{ID: m.ID, Title: m.Title, Created: m.Created, Updated: m.Updated}
}

// titleSource lets fuzzy match against note titles.
type titleSource []note.Metadata

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// filterNotes returns the notes whose title fuzzy-matches query, best match
// first. An empty query keeps the listing as is.
func filterNotes(notes []note.Metadata, query string) []note.Metadata {
	if query == "" {
		return notes
	}
	matches := fuzzy.FindFrom(query, titleSource(notes))
	out := make([]note.Metadata, 0, len(matches))
	for _, m := range matches {
		out = append(out, notes[m.Index])
	}
	return out
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List notes, newest first",
		Long:  `List prints every note. A query keeps only notes whose title fuzzy-matches it, best match first.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, logger, cfg, err := openStore(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()
			defer func() { _ = notes.Close() }()

			all, err := notes.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list notes: %w", err)
			}

			var query string
			if len(args) == 1 {
				query = args[0]
			}
			matched := filterNotes(all, query)
			logger.Debug("list", "total", len(all), "matched", len(matched), "query", query)

			out := cmd.OutOrStdout()
			if asJSON {
				items := make([]noteJSON, 0, len(matched))
				for _, m := range matched {
					items = append(items, metadataJSON(m))
				}
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(items)
			}

			text := i18n.FromEnv(cfg.Locale)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, m := range matched {
				fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, text.DisplayTitle(m.Title), m.Updated.Local().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
