package commands

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/lobby/internal/mockapi"
	"github.com/colonyops/lobby/internal/printer"
)

type MockAPICmd struct {
	flags    *Flags
	addr     string
	email    string
	password string
}

// NewMockAPICmd creates a new mock-api command.
func NewMockAPICmd(flags *Flags) *MockAPICmd {
	return &MockAPICmd{flags: flags}
}

// Register adds the mock-api command to the application.
func (cmd *MockAPICmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "mock-api",
		Usage:     "Serve a local login endpoint for development",
		UsageText: "lobby mock-api [--addr ADDR] [--email EMAIL] [--password PASSWORD]",
		Description: `Starts an HTTP server that answers the configured login path. The given
credentials are accepted, anything else is rejected with 401.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Sources:     cli.EnvVars("LOBBY_MOCK_ADDR"),
				Value:       mockapi.DefaultAddr,
				Destination: &cmd.addr,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "accepted email address",
				Value:       mockapi.DefaultEmail,
				Destination: &cmd.email,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "accepted password",
				Value:       mockapi.DefaultPassword,
				Destination: &cmd.password,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *MockAPICmd) run(ctx context.Context, _ *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := printer.Ctx(ctx)
	srv := mockapi.New(mockapi.Options{
		Email:     cmd.email,
		Password:  cmd.password,
		LoginPath: cmd.flags.Config.API.LoginPath,
	})

	return srv.Run(ctx, cmd.addr, func(addr net.Addr) {
		p.Infof("listening on http://%s%s", addr, cmd.flags.Config.API.LoginPath)
		p.Printf("  accepts %s / %s", cmd.email, cmd.password)
	})
}
