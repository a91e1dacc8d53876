package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusnav/campusnav/internal/client/storage"
	"github.com/campusnav/campusnav/internal/client/ui"
)

var (
	authEmail    string
	authPassword string
	authConfirm  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with your institutional email",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account with your institutional email",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the cached session",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&authEmail, "email", "", "institutional email address")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "password (prompted if omitted)")

	registerCmd.Flags().StringVar(&authEmail, "email", "", "institutional email address")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "password (prompted if omitted)")
	registerCmd.Flags().StringVar(&authConfirm, "confirm", "", "password confirmation (prompted if omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}

	email, err := promptIfEmpty(authEmail, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptIfEmpty(authPassword, "Password: ")
	if err != nil {
		return err
	}

	resp, err := cc.client.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	if err := cc.store.SaveSession(&storage.Session{
		Token:  resp.Token,
		UserID: resp.User.ID,
		Email:  resp.User.Email,
	}); err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle.Render("Logged in as " + resp.User.Email))
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}

	email, err := promptIfEmpty(authEmail, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptIfEmpty(authPassword, "Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptIfEmpty(authConfirm, "Confirm password: ")
	if err != nil {
		return err
	}

	resp, err := cc.client.Register(cmd.Context(), email, password, confirm)
	if err != nil {
		return err
	}

	if err := cc.store.SaveSession(&storage.Session{
		Token:  resp.Token,
		UserID: resp.User.ID,
		Email:  resp.User.Email,
	}); err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle.Render("Registered as " + resp.User.Email))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}
	if err := cc.store.ClearSession(); err != nil {
		return err
	}
	fmt.Println(ui.MutedStyle.Render("Logged out."))
	return nil
}

func promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
