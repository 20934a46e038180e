package cli

import (
	"context"
	"os"
)

// ForgotPassword requests a password-reset link. The backend message is
// displayed whether or not the address exists, as supplied.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.manager.ForgotPassword(ctx, email)
	if err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}

	printlnFn(msg)
	return nil
}

// ResetPassword finishes the reset flow with the one-time token from the
// emailed link. The token comes from the command argument; the manager
// rejects an empty one before any network call. The user must log in again
// afterwards.
func (a *App) ResetPassword(ctx context.Context, args []string) error {
	var resetToken string
	if len(args) > 0 {
		resetToken = args[0]
	}

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.manager.ResetPassword(ctx, resetToken, newPassword)
	if err != nil {
		printlnFn("Password reset failed:", err.Error())
		return err
	}

	printlnFn(msg)
	printlnFn("Please log in with your new password.")
	return nil
}

// RequestEmailChange starts the email-change flow for the signed-in user.
// The session email stays unchanged until the new address is verified.
func (a *App) RequestEmailChange(ctx context.Context) error {
	newEmail, err := getSimpleText(a.reader, "Enter new email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.manager.RequestEmailChange(ctx, newEmail)
	if err != nil {
		printlnFn("Email change request failed:", err.Error())
		return err
	}

	printlnFn(msg)
	return nil
}

// VerifyNewEmail finishes the email-change flow with the emailed token. On
// success the manager forces re-authentication.
func (a *App) VerifyNewEmail(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: verify-new-email <token>")
		return nil
	}

	msg, err := a.manager.VerifyNewEmail(ctx, args[0])
	if err != nil {
		printlnFn("New email verification failed:", err.Error())
		return err
	}

	printlnFn(msg)
	return nil
}

// ChangePassword updates the account password for the signed-in user. The
// gateway rejects the call locally when no credential is stored.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Enter current password", os.Stdout)
	if err != nil {
		return err
	}

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}

	if current == newPassword {
		printlnFn("New password must be different from the current password.")
		return nil
	}

	msg, err := a.api.ChangePassword(ctx, current, newPassword)
	if err != nil {
		printlnFn("Password update failed:", err.Error())
		return err
	}

	printlnFn(msg)
	return nil
}
