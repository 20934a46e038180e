package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context, args []string) error
	RequestEmailChange(ctx context.Context) error
	VerifyNewEmail(ctx context.Context, args []string) error
	VerifyEmail(ctx context.Context, args []string) error
	ResendVerification(ctx context.Context) error
	ChangePassword(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the CPP Hub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                     show available commands
//	  - register                 create an account (verification email is sent)
//	  - login                    authenticate
//	  - forgot                   request a password-reset link
//	  - reset <token>            finish a password reset with the emailed token
//	  - verify [token]           verify a registration email
//	  - resend                   resend the verification email
//	  - verify-new-email <token> finish an email change with the emailed token
//	  - exit | quit              leave the program
//
//	Logged in additionally:
//	  - whoami                   show the current session
//	  - change-email             request an email change
//	  - change-password          change the account password
//	  - logout                   log out
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cpphub %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, change-email, change-password, verify-new-email, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, reset, verify, resend, verify-new-email, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx, args)

		case "change-email":
			_ = a.RequestEmailChange(ctx)

		case "verify-new-email":
			_ = a.VerifyNewEmail(ctx, args)

		case "verify":
			_ = a.VerifyEmail(ctx, args)

		case "resend":
			_ = a.ResendVerification(ctx)

		case "change-password":
			_ = a.ChangePassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
