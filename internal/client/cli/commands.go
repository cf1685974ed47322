package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/apikeeper/internal/client/config"
)

// ErrKeyRejected is returned by validate for a key that is not usable, so the
// command exits non-zero.
var ErrKeyRejected = errors.New("key rejected")

func (a *App) registerUserCmd() *cobra.Command {
	var firstName, lastName, email string

	cmd := &cobra.Command{
		Use:   "register-user",
		Short: "Register a user and issue an API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if firstName, err = a.promptIfEmpty(firstName, "First name"); err != nil {
				return err
			}
			if lastName, err = a.promptIfEmpty(lastName, "Last name"); err != nil {
				return err
			}
			if email, err = a.promptIfEmpty(email, "Email"); err != nil {
				return err
			}

			return a.withClient(cmd, func(ctx context.Context, c Client) error {
				resp, err := c.RegisterUser(ctx, firstName, lastName, email)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "API key: %s\nExpires: %s\n", resp.GetApiKey(), resp.GetExpires().AsTime().Format(time.RFC3339))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	return cmd
}

func (a *App) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [api-key]",
		Short: "Check whether an API key is usable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			}
			key, err := a.promptIfEmpty(key, "API key")
			if err != nil {
				return err
			}

			return a.withClient(cmd, func(ctx context.Context, c Client) error {
				res, err := c.ValidateKey(ctx, key)
				if err != nil {
					return err
				}
				if res.GetValid() {
					if res.GetExpires() != nil {
						fmt.Fprintf(a.out, "%s (expires %s)\n", res.GetMessage(), res.GetExpires().AsTime().Format(time.RFC3339))
					} else {
						fmt.Fprintln(a.out, res.GetMessage())
					}
					return nil
				}
				fmt.Fprintf(a.out, "%s [%s]\n", res.GetMessage(), res.GetReason())
				return fmt.Errorf("%w: %s", ErrKeyRejected, res.GetReason())
			})
		},
	}
}

func (a *App) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator account and session commands",
	}
	cmd.AddCommand(a.adminRegisterCmd())
	cmd.AddCommand(a.adminLoginCmd())
	cmd.AddCommand(a.adminLogoutCmd())
	cmd.AddCommand(a.adminUsersCmd())
	return cmd
}

// readCredentials takes the email from the flag or a prompt and always
// prompts for the password.
func (a *App) readCredentials(email string) (string, []byte, error) {
	email, err := a.promptIfEmpty(email, "Email")
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

func (a *App) adminRegisterCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, password, err := a.readCredentials(email)
			if err != nil {
				return err
			}
			defer wipe(password)

			return a.withClient(cmd, func(ctx context.Context, c Client) error {
				resp, err := c.RegisterAdmin(ctx, email, string(password))
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Admin %s registered (id %d)\n", resp.GetEmail(), resp.GetId())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "administrator email")
	return cmd
}

func (a *App) adminLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open an admin session and save its token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, password, err := a.readCredentials(email)
			if err != nil {
				return err
			}
			defer wipe(password)

			return a.withClient(cmd, func(ctx context.Context, c Client) error {
				token, err := c.LoginAdmin(ctx, email, string(password))
				if err != nil {
					return err
				}
				if err := config.SaveToken(a.config.File, token); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Login successful, session saved to %s\n", a.config.File)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "administrator email")
	return cmd
}

func (a *App) adminLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved admin session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.SaveToken(a.config.File, ""); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func (a *App) adminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users with their API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withClient(cmd, func(ctx context.Context, c Client) error {
				users, err := c.ListUsers(ctx)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tKEY\tEXPIRES\tSTATUS")
				for _, u := range users {
					status := u.GetStatus()
					if status == "" {
						status = "-"
					}
					fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\t%s\n",
						u.GetId(), u.GetFirstName(), u.GetLastName(), u.GetEmail(), u.GetKeyValue(),
						u.GetExpiryDate().AsTime().Format(time.RFC3339), status)
				}
				return tw.Flush()
			})
		},
	}
}
