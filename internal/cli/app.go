// Package cli implements the interactive register/login commands for
// talking to a users service from a terminal.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/joshradin/federeddit/internal/client"
)

// App binds the remote users-service client to terminal input/output.
type App struct {
	client client.Client
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(c client.Client, in io.Reader, out io.Writer) *App {
	return &App{client: c, in: bufio.NewReader(in), out: out}
}

// Register prompts for an email, username, and password and creates
// the account.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.in, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.CreateUser(ctx, email, username, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// LogIn prompts for credentials, exchanges them for a bearer token,
// and prints the token in Authorization-header form so it can be
// pasted into other tools.
func (a *App) LogIn(ctx context.Context) error {
	email, err := getSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.client.LogIn(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", user.Username, user.Email)
	fmt.Fprintln(a.out, user.Bearer.String())
	return nil
}
