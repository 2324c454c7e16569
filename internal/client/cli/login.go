package cli

import (
	"context"
	"fmt"

	"github.com/mbelyaev/eventmap-client/internal/client/validation"
)

// LoginScreen renders the login form until a login succeeds (true) or the
// user gives up with an empty email (false).
func (a *App) LoginScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "Log in (empty email to quit)")

	for {
		email, err := GetSimpleText(a.reader, "Email", a.out)
		if err != nil || email == "" {
			return false
		}
		a.markEmail(email)
		if a.emailIsInvalid {
			fmt.Fprintln(a.out, "  invalid email")
		}

		password, err := GetPassword(a.out)
		if err != nil {
			return false
		}
		a.markPassword(password)
		if a.passwordIsInvalid {
			fmt.Fprintln(a.out, "  invalid password")
		}

		if a.emailIsInvalid || a.passwordIsInvalid {
			continue
		}

		fmt.Fprintln(a.out, "Authenticating...")
		out := a.login.Submit(ctx, email, password)

		// submit re-runs validation; reflect its verdict in the flags
		a.emailIsInvalid = out.EmailInvalid
		a.passwordIsInvalid = out.PasswordInvalid

		if out.ErrorMessage != "" {
			// presented once, then cleared on acknowledgement
			fmt.Fprintf(a.out, "Authentication Error: %s\n", out.ErrorMessage)
			a.login.Acknowledge()
			continue
		}

		if out.Navigate {
			a.login.Acknowledge()
			return true
		}
	}
}

// markEmail and markPassword are the thin state-setting wrappers around the
// pure validators: they record the per-field invalid flag for the UI.

func (a *App) markEmail(email string) bool {
	a.emailIsInvalid = !validation.ValidateEmail(validation.SanitizeEmail(email))
	return a.emailIsInvalid
}

func (a *App) markPassword(password string) bool {
	a.passwordIsInvalid = validation.IsPasswordInvalid(password)
	return a.passwordIsInvalid
}
