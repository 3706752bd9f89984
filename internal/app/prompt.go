package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/badmarinesstudio/horizon-web/internal/api"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readLine prints a prompt to w and reads one trimmed line from reader.
// A partial line before EOF is still returned.
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readSecret prints a password prompt to w and reads without echo.
func readSecret(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// InteractiveLogin prompts for credentials on the terminal and
// establishes the session, for provisioning a token before the first
// browser visit.
func (a *App) InteractiveLogin(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)

	identifier, err := readLine(reader, "Username or email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := readSecret(os.Stdout)
	if err != nil {
		return err
	}

	token, err := a.client.Login(ctx, api.Credentials{
		UsernameOrEmail: identifier,
		Password:        string(password),
	})
	for i := range password {
		password[i] = 0
	}
	if err != nil {
		if code := api.MessageCode(err); code != "" {
			return fmt.Errorf("login rejected: %s", code)
		}
		return fmt.Errorf("login failed: %w", err)
	}

	a.controller.Login(ctx, token)

	// Give the fire-and-forget profile fetch a moment so the greeting can
	// use the username.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if u := a.users.Get(); u != nil {
			fmt.Printf("Logged in as %s\n", u.Username)
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	fmt.Println("Logged in")
	return nil
}
