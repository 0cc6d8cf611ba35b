package main

import (
	"fmt"
	"strings"

	"github.com/Infogain-GenAI/sample-app1/internal/dataproc"
	"github.com/Infogain-GenAI/sample-app1/internal/tui"
	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/spf13/cobra"
)

func (c *cli) newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME EMAIL",
		Short: "Add a user record",
		Args:  cobra.ExactArgs(2),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			name, email := args[0], args[1]
			warnIfNotEmail(cmd, email)

			if !s.users.AddUser(cmd.Context(), name, email) {
				return fmt.Errorf("%w: add user %q", errOperationFailed, name)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.Notice("Added user "+name))
			return nil
		}),
	}
}

func (c *cli) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show the first user with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			user, ok := s.users.GetUser(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("%w: %q", errUserNotFound, args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderUser(user))
			return nil
		}),
	}
}

func (c *cli) newFindEmailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find-email EMAIL",
		Short: "Show the first user with the given email",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			user, ok := s.users.FindUserByEmail(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("%w: %q", errUserNotFound, args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderUser(user))
			return nil
		}),
	}
}

func (c *cli) newUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update NAME EMAIL",
		Short: "Replace the email of every user with the given name",
		Args:  cobra.ExactArgs(2),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			name, email := args[0], args[1]
			warnIfNotEmail(cmd, email)

			if !s.users.UpdateUser(cmd.Context(), name, email) {
				return fmt.Errorf("%w: update user %q", errOperationFailed, name)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.Notice("Updated user "+name))
			return nil
		}),
	}
}

func (c *cli) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete every user with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			if !s.users.DeleteUser(cmd.Context(), args[0]) {
				return fmt.Errorf("%w: delete user %q", errOperationFailed, args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.Notice("Deleted user "+args[0]))
			return nil
		}),
	}
}

func (c *cli) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string, s *session) error {
			users, ok := s.users.GetAllUsers(cmd.Context())
			if !ok {
				return errListingUnavailable
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderUsers(users))

			if dups := duplicateNames(users); len(dups) > 0 {
				fmt.Fprint(out, tui.Notice("Names shared by several users: "+strings.Join(dups, ", ")))
			}

			return nil
		}),
	}
}

func duplicateNames(users []models.User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}

	return dataproc.FindDuplicates(names)
}

// warnIfNotEmail flags an odd-looking address but lets the command go on;
// the store accepts any text.
func warnIfNotEmail(cmd *cobra.Command, email string) {
	if !dataproc.ValidateEmail(email) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q does not look like an email address\n", email)
	}
}
