// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amirdzh/formkeeper/internal/auth"
	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/state"
)

// newAuthService builds the authentication service over the active store
// with the configured registration policy.
func newAuthService() (*auth.Service, error) {
	return auth.NewService(db.DefaultStore(), auth.Config{
		MinPasswordLength: appConfig.Auth.MinPasswordLength,
		UsernamePattern:   appConfig.Auth.UsernamePattern,
	})
}

// readPassword prompts for a password without echoing. When stdin is not a
// terminal (tests, pipes) it falls back to a plain line read.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newAuthService()
		if err != nil {
			return err
		}
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}

		result := svc.Register(args[0], password, confirm)
		fmt.Println(result.Message)
		if !result.OK {
			os.Exit(1)
		}
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in as an existing user",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newAuthService()
		if err != nil {
			return err
		}

		var username string
		if len(args) == 1 {
			username = args[0]
		} else {
			// Pre-fill with the most recently registered username.
			username = svc.LastUsername()
			prompt := "Username: "
			if username != "" {
				prompt = fmt.Sprintf("Username [%s]: ", username)
			}
			fmt.Print(prompt)
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			if entered := strings.TrimSpace(line); entered != "" {
				username = entered
			}
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		result := svc.Login(username, password)
		fmt.Println(result.Message)
		if !result.OK {
			os.Exit(1)
		}
		state.CurrentSession.Set(state.Session{
			UserID:   result.UserID,
			Username: result.Username,
			Theme:    appConfig.Theme,
		})
		return nil
	},
}
