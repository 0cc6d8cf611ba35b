package main

import (
	"fmt"

	"github.com/Infogain-GenAI/sample-app1/internal/tui"
	"github.com/spf13/cobra"
)

// seedUsers are added by the seed command, in order.
var seedUsers = []struct{ name, email string }{
	{"John", "john@example.com"},
	{"Jane", "jane@example.com"},
}

const missingUserName = "NonExistent"

func (c *cli) newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the sample users and report the total",
		Long: `Add John and Jane, look up a user that does not exist and print the
total number of users in the store. Running it twice adds the sample users
again; names are not unique.`,
		Args: cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string, s *session) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			for _, u := range seedUsers {
				if !s.users.AddUser(ctx, u.name, u.email) {
					return fmt.Errorf("%w: add user %q", errOperationFailed, u.name)
				}
			}

			if user, ok := s.users.GetUser(ctx, missingUserName); ok {
				fmt.Fprintln(out, user.Name)
			} else {
				fmt.Fprint(out, tui.Notice("User not found"))
			}

			users, ok := s.users.GetAllUsers(ctx)
			if !ok {
				return errListingUnavailable
			}
			if len(users) > 0 {
				fmt.Fprintf(out, "Users: %d total users in database\n", len(users))
			}

			return nil
		}),
	}
}
