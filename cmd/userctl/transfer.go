package main

import (
	"encoding/json"
	"fmt"

	"github.com/Infogain-GenAI/sample-app1/internal/dataproc"
	"github.com/Infogain-GenAI/sample-app1/internal/tui"
	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/spf13/cobra"
)

func (c *cli) newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write all users to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			users, ok := s.users.GetAllUsers(cmd.Context())
			if !ok {
				return errListingUnavailable
			}

			content, err := json.MarshalIndent(users, "", "  ")
			if err != nil {
				return fmt.Errorf("error encoding users: %w", err)
			}

			if err = dataproc.SaveToFile(args[0], string(content)+"\n"); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.Notice(fmt.Sprintf("Exported %d users to %s", len(users), args[0])))
			return nil
		}),
	}
}

// newImportCommand adds every record of a JSON array produced by export.
// IDs and creation stamps in the file are ignored; the store assigns new ones.
func (c *cli) newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add users from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			users, err := dataproc.ReadJSONFile[[]models.User](args[0])
			if err != nil {
				return err
			}

			imported := 0
			for _, u := range users {
				warnIfNotEmail(cmd, u.Email)
				if s.users.AddUser(cmd.Context(), u.Name, u.Email) {
					imported++
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.Notice(fmt.Sprintf("Imported %d of %d users", imported, len(users))))
			if imported != len(users) {
				return fmt.Errorf("%w: %d failed", errImportIncomplete, len(users)-imported)
			}

			return nil
		}),
	}
}
