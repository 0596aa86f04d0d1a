package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/design-hub/internal/config"
	"github.com/JaimeStill/design-hub/pkg/authapi"
)

type rootOptions struct {
	baseURL string
	timeout time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "authctl",
		Short:         "Call the auth API signup and login endpoints",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "auth API base URL (default $AUTH_API_BASE_URL)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout, 0 waits indefinitely")

	cmd.AddCommand(newSignupCommand(opts), newLoginCommand(opts))
	return cmd
}

func newSignupCommand(opts *rootOptions) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			resp, err := client.Signup(cmd.Context(), username, email, password)
			return printResult(cmd.OutOrStdout(), resp, err)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the server response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			resp, err := client.Login(cmd.Context(), email, password)
			return printResult(cmd.OutOrStdout(), resp, err)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

// client builds an auth client. Flags win over the environment.
func (o *rootOptions) client() (*authapi.Client, error) {
	cfg := &authapi.Config{BaseURL: o.baseURL}
	if o.timeout > 0 {
		cfg.Timeout = o.timeout.String()
	}

	env := &authapi.ConfigEnv{}
	if o.baseURL == "" {
		env.BaseURL = config.AuthEnv.BaseURL
	}
	if o.timeout == 0 {
		env.Timeout = config.AuthEnv.Timeout
	}
	if err := cfg.Finalize(env); err != nil {
		return nil, err
	}
	return authapi.New(cfg), nil
}

// printResult writes the response body. Upstream rejections print the server
// body before returning the error so the message is not lost.
func printResult(w io.Writer, resp json.RawMessage, err error) error {
	var statusErr *authapi.StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintln(w, string(statusErr.Body))
		return err
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(resp))
	return err
}
