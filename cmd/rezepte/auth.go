package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/izebair/Rezepte/internal/cli"
	"github.com/izebair/Rezepte/internal/common"
	"github.com/izebair/Rezepte/internal/config"
	"github.com/izebair/Rezepte/internal/graph"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Microsoft Graph",
		Long:  `Manage the Microsoft account login used to create OneNote pages.`,
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authStatusCmd())
	cmd.AddCommand(authLogoutCmd())

	return cmd
}

func authLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in using the device-code flow",
		Long: `Sign in to the Microsoft account that owns the target notebook.

This command will:
1. Request a device code from Microsoft
2. Show you a short code and a verification URL
3. Wait until you confirm the code in your browser
4. Save the token for future runs`,
		RunE: runAuthLogin,
	}
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.ClientID == "" {
		return fmt.Errorf("client_id (REZEPTE_CLIENT_ID) must be set")
	}

	fmt.Println(cli.FormatTitle("Microsoft Graph Login"))

	_, err = graph.AuthenticateDeviceCode(cmd.Context(), graphAuthConfig(cfg),
		func(userCode, verificationURL string) {
			fmt.Println()
			fmt.Println("  Open " + cli.InfoStyle.Render(verificationURL))
			fmt.Println("  and enter the code " + cli.TitleStyle.Render(userCode))
			fmt.Println()
			fmt.Println(cli.SubtleStyle.Render("  Waiting for confirmation..."))
		})
	if err != nil {
		return err
	}

	// Confirm the token actually works before declaring success.
	user, err := whoAmI(cmd.Context(), cfg)
	if err != nil {
		return common.NewUserError("signed in, but the Graph connection check failed", err)
	}

	fmt.Println(cli.FormatSuccess("Signed in as " + user.DisplayName))
	return nil
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a usable login exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			exists, valid := graph.TokenStatus(cfg.TokenFile)
			switch {
			case !exists:
				fmt.Println(cli.FormatWarning("Not signed in, run 'rezepte auth login'"))
			case valid:
				if user, err := whoAmI(cmd.Context(), cfg); err != nil {
					fmt.Println(cli.FormatWarning("Token present, but the Graph check failed: " + err.Error()))
				} else {
					fmt.Println(cli.FormatSuccess("Signed in as " + user.DisplayName))
				}
			default:
				fmt.Println(cli.FormatWarning("Token expired, it will be refreshed on the next import"))
			}
			return nil
		},
	}
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := os.Remove(cfg.TokenFile); err != nil {
				if os.IsNotExist(err) {
					fmt.Println(cli.FormatWarning("No saved token"))
					return nil
				}
				return fmt.Errorf("failed to remove token: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Signed out"))
			return nil
		},
	}
}

func graphAuthConfig(cfg *config.Config) graph.AuthConfig {
	return graph.AuthConfig{
		ClientID:  cfg.ClientID,
		TenantID:  cfg.TenantID,
		Authority: cfg.Authority,
		TokenFile: cfg.TokenFile,
	}
}

// whoAmI fetches the signed-in user via the saved token.
func whoAmI(ctx context.Context, cfg *config.Config) (*graph.User, error) {
	httpClient, err := graph.HTTPClient(ctx, graphAuthConfig(cfg))
	if err != nil {
		return nil, err
	}
	return graph.NewClient(httpClient).Me(ctx)
}
