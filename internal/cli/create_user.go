package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/service"
	"github.com/polidog/web/internal/validator"
)

func (a *app) newCreateUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-user <name> <email>",
		Short: "Create a verified user",
		Long: `Create a user whose email is already verified, for example the author
that imported posts are attributed to. The allow-list does not apply.

Example:
  blogctl create-user "Jane Doe" jane@example.com`,
		Args: cobra.ExactArgs(2),
		RunE: a.createUser,
	}
}

func (a *app) createUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, _, err := a.openStore(ctx, true)
	if err != nil {
		return err
	}
	defer store.Close()

	users := service.NewUserService(store.Users(), validator.NewValidator(), nil)
	user, err := users.Create(ctx, validator.UserInput{Name: args[0], Email: args[1]}, true)
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return fmt.Errorf("a user with email %s already exists", args[1])
	case err != nil:
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created user %s\n", user.Email)
	fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", user.ID)
	return nil
}
