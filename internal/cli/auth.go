package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MoroniPereira/TIME-SHEET/internal/model"
	"github.com/MoroniPereira/TIME-SHEET/internal/validate"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the session",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	fieldErrs := validate.Errors{}
	fieldErrs.Check(validate.Email(loginEmail), "email", "invalid email address")
	if !fieldErrs.Valid() {
		return fmt.Errorf("email: %s", fieldErrs["email"])
	}

	a := newApp()
	res, err := a.auth.Login(cmd.Context(), model.Credentials{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", res.User.FullName, res.User.Email)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		if err := a.auth.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		u := a.session.CurrentUser()
		if u == nil {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s>  %s/%s  type=%s\n", u.FullName, u.Email, u.Department, u.Position, u.Type)
		if exp, ok := a.session.TokenExpiresAt(); ok {
			state := "valid"
			if a.session.TokenExpired() {
				state = "expired"
			}
			fmt.Printf("token %s until %s\n", state, exp.Local().Format(time.RFC3339))
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Ask the backend whether the current token is still valid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		if err := a.requireAuth(); err != nil {
			return err
		}
		ok, err := a.auth.Validate(cmd.Context())
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("token valid")
		} else {
			fmt.Println("token invalid")
		}
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Renew the session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		if !a.session.IsAuthenticated() {
			return fmt.Errorf("not logged in (run: timesheet login)")
		}
		if _, err := a.auth.Refresh(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("token refreshed")
		return nil
	},
}
