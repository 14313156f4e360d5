package main

import (
	"context"
	"time"

	"github.com/alecthomas/kong"

	"github.com/openpos/poscon/cmd/console/internal/commands"
	"github.com/openpos/poscon/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Login     commands.LoginCmd     `cmd:"" help:"Log in to the platform"`
		Logout    commands.LogoutCmd    `cmd:"" help:"Log out and clear local state"`
		Whoami    commands.WhoamiCmd    `cmd:"" help:"Show the current session"`
		Org       commands.OrgCmd       `cmd:"" help:"Manage the organization scope"`
		Organizer commands.OrganizerCmd `cmd:"" help:"Manage organizers (tenants)"`
		Category  commands.CategoryCmd  `cmd:"" help:"Manage categories"`
		Product   commands.ProductCmd   `cmd:"" help:"Manage products"`
		PriceList commands.PriceListCmd `cmd:"" name:"price-list" help:"Manage price lists"`
		Staff     commands.StaffCmd     `cmd:"" help:"Manage staff"`
		User      commands.UserCmd      `cmd:"" help:"Inspect users"`

		Server   string        `help:"Platform API URL" default:"${server}" env:"POSCON_SERVER"`
		StateDir string        `help:"Local state directory" default:"" env:"POSCON_STATE_DIR"`
		Timeout  time.Duration `help:"Request timeout" default:"${timeout}" env:"POSCON_TIMEOUT"`
		Debug    bool          `help:"Enable debug logging"`
		Version  kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()

	fileCfg, err := commands.LoadFileConfig()
	if err != nil {
		fileCfg.Server = commands.DefaultServer
	}

	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
			"server":  fileCfg.Server,
			"timeout": fileCfg.Timeout.String(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	logger.Setup(cli.Debug)

	stateDir := cli.StateDir
	if stateDir == "" {
		stateDir = fileCfg.StateDir
	}

	err = cmd.Run(&commands.Globals{
		Debug:    cli.Debug,
		Version:  version,
		Server:   cli.Server,
		StateDir: stateDir,
		Timeout:  cli.Timeout,
	})
	cmd.FatalIfErrorf(err)
}
