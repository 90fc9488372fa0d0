package auth

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/catalystcommunity/vcdctl/internal/config"
	"github.com/catalystcommunity/vcdctl/internal/session"
	"github.com/catalystcommunity/vcdctl/internal/vcloud"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// LoginCommand authenticates against a vCloud Director endpoint and caches
// the session for later commands
var LoginCommand = &cli.Command{
	Name:      "login",
	Usage:     "Log in to a vCloud Director endpoint",
	ArgsUsage: "<host> <org> <user>",
	Description: `Authenticate and cache the session token.

The token is stored in the OS keyring (with a file fallback) and the
endpoint, org and user are recorded in the session profile. Without
--password the password is prompted for without echo.

Example:
  vcdctl login vcd.example.com acme admin`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Password (prompted when omitted)",
		},
	},
	Action: runLogin,
}

// LogoutCommand drops the cached session
var LogoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out and forget the cached session",
	Action: runLogout,
}

// InfoCommand shows the cached session state
var InfoCommand = &cli.Command{
	Name:   "info",
	Usage:  "Show the cached session",
	Action: runInfo,
}

func runLogin(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 3 {
		return fmt.Errorf("requires 3 arguments: <host> <org> <user>")
	}

	host := cmd.Args().Get(0)
	org := cmd.Args().Get(1)
	user := cmd.Args().Get(2)

	password := cmd.String("password")
	if password == "" {
		var err error
		password, err = promptPassword(fmt.Sprintf("Password for %s@%s", user, org))
		if err != nil {
			return err
		}
	}

	endpoint := host
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = fmt.Sprintf("https://%s/api", host)
	}

	info, err := vcloud.Login(endpoint, org, user, password)
	if err != nil {
		return err
	}

	if err := session.StoreToken(info.Token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}

	profile := &config.Profile{Endpoint: endpoint, Org: info.Org, User: info.User}
	if err := config.SaveProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("Logged in as %s@%s\n", info.User, info.Org)
	return nil
}

func runLogout(ctx context.Context, cmd *cli.Command) error {
	if err := session.ClearToken(); err != nil {
		// The profile is still dropped below; an absent token is not fatal
		fmt.Printf("Warning: %v\n", err)
	}

	if err := config.RemoveProfile(); err != nil {
		return err
	}

	fmt.Println("Logged out")
	return nil
}

func runInfo(ctx context.Context, cmd *cli.Command) error {
	profile, err := config.LoadProfile()
	if err != nil {
		if os.IsNotExist(err) {
			return session.ErrNotLoggedIn
		}
		return err
	}

	fmt.Printf("endpoint: %s\n", profile.Endpoint)
	fmt.Printf("org:      %s\n", profile.Org)
	fmt.Printf("user:     %s\n", profile.User)
	if profile.VDCInUse != nil {
		fmt.Printf("vdc:      %s\n", profile.VDCInUse.Name)
	} else {
		fmt.Printf("vdc:      (none selected)\n")
	}
	return nil
}

// promptPassword reads a password without echoing to screen
func promptPassword(message string) (string, error) {
	fmt.Printf("%s: ", message)

	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	return string(password), nil
}
