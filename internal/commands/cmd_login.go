package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/lobby/internal/core/auth"
	"github.com/colonyops/lobby/internal/core/styles"
	"github.com/colonyops/lobby/internal/core/toast"
	"github.com/colonyops/lobby/internal/printer"
	"github.com/colonyops/lobby/internal/tui/views/login"
)

type LoginCmd struct {
	flags    *Flags
	email    string
	password string
}

// NewLoginCmd creates a new login command.
func NewLoginCmd(flags *Flags) *LoginCmd {
	return &LoginCmd{flags: flags}
}

// Register adds the login command to the application.
func (cmd *LoginCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "login",
		Usage:     "Log in without the full-screen interface",
		UsageText: "lobby login [--email EMAIL] [--password PASSWORD]",
		Description: `Posts the credentials to the login endpoint and prints the resulting
notification. Missing credentials are prompted for when stdin is a terminal.
Exits with status 1 when the login fails.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Usage:       "account email address",
				Sources:     cli.EnvVars("LOBBY_EMAIL"),
				Destination: &cmd.email,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "account password",
				Sources:     cli.EnvVars("LOBBY_PASSWORD"),
				Destination: &cmd.password,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *LoginCmd) run(ctx context.Context, _ *cli.Command) error {
	if cmd.email == "" || cmd.password == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("--email and --password are required when stdin is not a terminal")
		}
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	cfg := cmd.flags.Config
	client, err := auth.NewClient(cfg.AuthOptions())
	if err != nil {
		return fmt.Errorf("create auth client: %w", err)
	}

	creds := auth.Credentials{Email: cmd.email, Password: cmd.password}
	final := loginOnce(ctx, client, printer.Ctx(ctx), cfg.Toast.Duration, creds)
	if final.Severity == toast.SeverityError {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *LoginCmd) runForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email Address").
				Validate(required("email")).
				Value(&cmd.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(required("password")).
				Value(&cmd.password),
		),
	).WithTheme(styles.FormTheme()).Run()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// loginOnce mounts a toast provider for the duration of one attempt, prints
// every shown toast, and returns the final packet.
func loginOnce(ctx context.Context, authn login.Authenticator, p *printer.Printer, d time.Duration, creds auth.Credentials) toast.Packet {
	provider := toast.NewProvider(d)
	ctx = provider.Mount(ctx)
	defer provider.Unmount()

	unsubscribe := provider.Channel().Subscribe(p.Toast)
	defer unsubscribe()

	dispatcher := toast.MustFromContext(ctx)

	resp, err := authn.Login(ctx, creds)
	message, severity := login.Outcome(resp, err)
	dispatcher.ShowToast(message, severity)

	return provider.Channel().Current()
}
