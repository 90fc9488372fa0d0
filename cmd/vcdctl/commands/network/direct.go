package network

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/vcdctl/internal/session"
	"github.com/catalystcommunity/vcdctl/internal/vcloud"
	"github.com/urfave/cli/v3"
)

// DirectCommand is the network direct subcommand
var DirectCommand = &cli.Command{
	Name:  "direct",
	Usage: "Work with directly connected org VDC networks",
	Description: `Manage org VDC networks bridged directly to an external network.

All direct network commands operate on the in-use VDC; select one with
'vcdctl vdc use <name>'. System Administrators have full control;
Organization Administrators can only list.`,
	Commands: []*cli.Command{
		directCreateCommand,
		directListCommand,
		directDeleteCommand,
	},
}

var directCreateCommand = &cli.Command{
	Name:      "create",
	Usage:     "Create a new directly connected org VDC network",
	ArgsUsage: "<name>",
	Description: `Create an org VDC network directly connected to an external network.

Example:
  vcdctl network direct create direct-net1 \
      --parent ext-net1 \
      --description 'Directly connected VDC network' \
      --shared`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "parent",
			Aliases: []string{"p"},
			Usage:   "Name of the external network to connect to",
		},
		&cli.StringFlag{
			Name:    "description",
			Aliases: []string{"d"},
			Usage:   "Description of the network",
		},
		&cli.BoolFlag{
			Name:    "shared",
			Aliases: []string{"s"},
			Usage:   "Share the network with other VDCs in the organization",
		},
		&cli.BoolFlag{
			Name:  "not-shared",
			Usage: "Keep the network private to this VDC (default)",
		},
	},
	Action: runDirectCreate,
}

var directListCommand = &cli.Command{
	Name:   "list",
	Usage:  "List all directly connected org VDC networks in the in-use VDC",
	Action: runDirectList,
}

var directDeleteCommand = &cli.Command{
	Name:      "delete",
	Usage:     "Delete a directly connected org VDC network in the in-use VDC",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "Delete the network even if it is in use",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Skip confirmation prompt",
		},
	},
	Action: runDirectDelete,
}

func runDirectCreate(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("network name is required")
	}
	name := cmd.Args().Get(0)

	parent := cmd.String("parent")
	if parent == "" {
		return fmt.Errorf("--parent is required")
	}

	sess, err := session.Restore(true)
	if err != nil {
		return err
	}
	vdc, err := sess.VDC()
	if err != nil {
		return err
	}

	task, err := vdc.CreateDirectNetwork(vcloud.DirectNetworkSpec{
		Name:              name,
		ParentNetworkName: parent,
		Description:       cmd.String("description"),
		IsShared:          sharedFlag(cmd),
	})
	if err != nil {
		return err
	}

	printTask(task)
	return nil
}

func runDirectList(ctx context.Context, cmd *cli.Command) error {
	sess, err := session.Restore(true)
	if err != nil {
		return err
	}
	vdc, err := sess.VDC()
	if err != nil {
		return err
	}

	networks, err := vdc.ListDirectNetworks()
	if err != nil {
		return err
	}

	printNetworkList(networks, "direct")
	return nil
}

func runDirectDelete(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("network name is required")
	}
	name := cmd.Args().Get(0)

	if !cmd.Bool("yes") {
		if !confirm("Are you sure you want to delete the org VDC network?") {
			fmt.Println("Deletion cancelled")
			return nil
		}
	}

	sess, err := session.Restore(true)
	if err != nil {
		return err
	}
	vdc, err := sess.VDC()
	if err != nil {
		return err
	}

	task, err := vdc.DeleteDirectNetwork(name, cmd.Bool("force"))
	if err != nil {
		return err
	}

	printTask(task)
	return nil
}
