package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/xJoaG/cpphub-cli/internal/client/throttle"
)

// VerifyEmail verifies a registration email with the token from the emailed
// link. Without a token it only reminds the user to check their inbox.
func (a *App) VerifyEmail(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Please check your email for a verification link, then run: verify <token>")
		return nil
	}

	msg, err := a.api.VerifyEmail(ctx, args[0])
	if err != nil {
		printlnFn("Email verification failed:", err.Error())
		return err
	}

	printlnFn(msg)
	printlnFn("You can now log in.")
	return nil
}

// ResendVerification asks the backend to resend the verification email.
// Rejected locally while the cooldown runs or a resend is already in flight;
// the gateway is never asked to enforce the throttle.
func (a *App) ResendVerification(ctx context.Context) error {
	if a.resendInFlight {
		printlnFn("A resend is already in progress.")
		return nil
	}
	if a.cooldown.Active() {
		printlnFn(fmt.Sprintf("Resend available in %ds.", a.cooldown.Remaining()))
		return nil
	}

	email := a.unverifiedEmail
	if email == "" {
		var err error
		email, err = getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
		a.unverifiedEmail = email
	}

	a.resendInFlight = true
	msg, err := a.api.ResendVerification(ctx, email)
	a.resendInFlight = false

	if err != nil {
		printlnFn("Failed to resend email:", err.Error())
		return err
	}

	a.cooldown.Start(int(throttle.DefaultResendWait.Seconds()))
	printlnFn(msg)
	return nil
}
