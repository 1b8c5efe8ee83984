package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/whatsyour-info/whatsyour-go/pkg/whatsyour"
)

// apiClient is the subset of *whatsyour.Client the commands use.
type apiClient interface {
	GetProfile(ctx context.Context, username string) (*whatsyour.PublicProfile, error)
	SearchProfiles(ctx context.Context, query string, limit int) ([]whatsyour.PublicProfile, error)
	AuthenticateUser(ctx context.Context, email, password string) (*whatsyour.LoginResponse, error)
	VerifyToken(ctx context.Context, token string) (*whatsyour.AuthUser, error)
	GetUserProfile(ctx context.Context, token string) (*whatsyour.AuthUser, error)
	CreateOAuthURL(clientID, redirectURI, state string) string
	ExchangeCodeForToken(ctx context.Context, clientID, clientSecret, code, redirectURI string) (whatsyour.TokenResponse, error)
}

func newRootCmd(client apiClient, format string) *cobra.Command {
	root := &cobra.Command{
		Use:           "whatsyour",
		Short:         "Query the What'sYour.Info API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&format, "output", "o", format, "output format (yaml|json)")

	emit := func(cmd *cobra.Command, v any) error {
		return render(cmd.OutOrStdout(), format, v)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "profile <username>",
			Short: "Fetch a public profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := client.GetProfile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return emit(cmd, p)
			},
		},
		newSearchCmd(client, emit),
		newLoginCmd(client, emit),
		&cobra.Command{
			Use:   "verify <token>",
			Short: "Verify a user session token",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				u, err := client.VerifyToken(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return emit(cmd, u)
			},
		},
		&cobra.Command{
			Use:   "me <token>",
			Short: "Show the account behind a user session token",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				u, err := client.GetUserProfile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return emit(cmd, u)
			},
		},
		newOAuthURLCmd(client),
		newExchangeCmd(client, emit),
		newURLsCmd(emit),
	)
	return root
}

type printFunc func(cmd *cobra.Command, v any) error

func newSearchCmd(client apiClient, emit printFunc) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search public profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := client.SearchProfiles(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return emit(cmd, profiles)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", whatsyour.DefaultSearchLimit, "maximum number of results")
	return cmd
}

func newLoginCmd(client apiClient, emit printFunc) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate a user with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := client.AuthenticateUser(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return emit(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newOAuthURLCmd(client apiClient) *cobra.Command {
	var clientID, redirectURI, state string
	cmd := &cobra.Command{
		Use:   "oauth-url",
		Short: "Print the OAuth authorization URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), client.CreateOAuthURL(clientID, redirectURI, state))
			return err
		},
	}
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth client id")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect URI registered for the client")
	cmd.Flags().StringVar(&state, "state", "", "opaque state echoed back on redirect")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("redirect-uri")
	return cmd
}

func newExchangeCmd(client apiClient, emit printFunc) *cobra.Command {
	var clientID, clientSecret, code, redirectURI string
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange an authorization code for an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := client.ExchangeCodeForToken(cmd.Context(), clientID, clientSecret, code, redirectURI)
			if err != nil {
				return err
			}
			return emit(cmd, tok)
		},
	}
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth client id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth client secret")
	cmd.Flags().StringVar(&code, "code", "", "authorization code")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect URI used in the authorization request")
	for _, name := range []string{"client-id", "client-secret", "code", "redirect-uri"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newURLsCmd(emit printFunc) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "urls <username>",
		Short: "Print the profile, subdomain and avatar URLs for a username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, map[string]string{
				"profile":   whatsyour.GenerateProfileURL(args[0]),
				"subdomain": whatsyour.GenerateSubdomainURL(args[0]),
				"avatar":    whatsyour.GenerateAvatarURL(args[0], size),
			})
		},
	}
	cmd.Flags().IntVar(&size, "size", whatsyour.DefaultAvatarSize, "avatar size in pixels")
	return cmd
}
