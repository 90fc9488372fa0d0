package main

import (
	"context"
	"fmt"
	"os"

	authcmd "github.com/catalystcommunity/vcdctl/cmd/vcdctl/commands/auth"
	networkcmd "github.com/catalystcommunity/vcdctl/cmd/vcdctl/commands/network"
	vdccmd "github.com/catalystcommunity/vcdctl/cmd/vcdctl/commands/vdc"
	"github.com/urfave/cli/v3"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "vcdctl",
		Usage:   "A CLI for vCloud Director network provisioning",
		Version: Version,
		Commands: []*cli.Command{
			authcmd.LoginCommand,
			authcmd.LogoutCommand,
			authcmd.InfoCommand,
			networkcmd.Command,
			vdccmd.Command,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
