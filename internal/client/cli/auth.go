package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate. On
// success the manager persists the credential and navigates to the
// dashboard. The backend error message is shown to the user on failure.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.manager.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in.")
	return nil
}

// Register prompts for email, name, and password and creates an account.
// No session is created; the user is directed to the verification view and
// the entered email is remembered for resends.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.manager.Register(ctx, email, password, name)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	a.unverifiedEmail = email
	printlnFn(msg)
	return nil
}

// Logout destroys the session and clears the stored credential. Never fails.
func (a *App) Logout(ctx context.Context) error {
	a.manager.Logout(ctx)
	a.unverifiedEmail = ""
	printlnFn("Logged out.")
	return nil
}

// WhoAmI shows the current optimistic identity snapshot.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.manager.Session()
	if s == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn("Logged in as", s.Name, "<"+s.Email+">")
	return nil
}
