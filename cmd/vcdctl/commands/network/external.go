package network

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/vcdctl/internal/session"
	"github.com/catalystcommunity/vcdctl/internal/vcloud"
	"github.com/urfave/cli/v3"
)

// ExternalCommand is the network external subcommand
var ExternalCommand = &cli.Command{
	Name:  "external",
	Usage: "Work with external networks",
	Description: `Manage external networks.

External networks are backed by vCenter port groups and managed at the
system level. Only System Administrators can work with them.`,
	Commands: []*cli.Command{
		externalCreateCommand,
		externalListCommand,
		externalDeleteCommand,
		externalUpdateCommand,
	},
}

var externalCreateCommand = &cli.Command{
	Name:      "create",
	Usage:     "Create a new external network",
	ArgsUsage: "<name> <vc-name>",
	Description: `Create an external network backed by one or more vCenter port groups.

--port-group and --ip-range are required and repeatable; ranges use
StartAddress-EndAddress format.

Example:
  vcdctl network external create ext-net1 vc1 \
      --port-group pg1 --port-group pg2 \
      --gateway 192.168.1.1 --netmask 255.255.255.0 \
      --ip-range 192.168.1.2-192.168.1.49 \
      --ip-range 192.168.1.100-192.168.1.149 \
      --description 'External network' \
      --dns1 8.8.8.8 --dns2 8.8.8.9 --dns-suffix example.com`,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "port-group",
			Aliases: []string{"p"},
			Usage:   "Name of a vCenter port group backing the network (repeatable)",
		},
		&cli.StringFlag{
			Name:    "gateway",
			Aliases: []string{"g"},
			Usage:   "Gateway IP of the subnet",
		},
		&cli.StringFlag{
			Name:    "netmask",
			Aliases: []string{"n"},
			Usage:   "Network mask of the subnet",
		},
		&cli.StringSliceFlag{
			Name:    "ip-range",
			Aliases: []string{"i"},
			Usage:   "Static IP range in StartAddress-EndAddress format (repeatable)",
		},
		&cli.StringFlag{
			Name:    "description",
			Aliases: []string{"d"},
			Usage:   "Description of the network",
		},
		&cli.StringFlag{
			Name:  "dns1",
			Usage: "IP of the primary DNS server",
		},
		&cli.StringFlag{
			Name:  "dns2",
			Usage: "IP of the secondary DNS server",
		},
		&cli.StringFlag{
			Name:  "dns-suffix",
			Usage: "DNS suffix",
		},
	},
	Action: runExternalCreate,
}

var externalListCommand = &cli.Command{
	Name:   "list",
	Usage:  "List all external networks in the system",
	Action: runExternalList,
}

var externalDeleteCommand = &cli.Command{
	Name:      "delete",
	Usage:     "Delete an external network",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Skip confirmation prompt",
		},
	},
	Action: runExternalDelete,
}

var externalUpdateCommand = &cli.Command{
	Name:      "update",
	Usage:     "Update name and description of an external network",
	ArgsUsage: "<name>",
	Description: `Update attributes of an external network.

Only the supplied attributes change; omitted ones keep their current
values, so a call without --name and --description is a no-op update.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "New name of the external network",
		},
		&cli.StringFlag{
			Name:    "description",
			Aliases: []string{"d"},
			Usage:   "New description of the external network",
		},
	},
	Action: runExternalUpdate,
}

func runExternalCreate(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("requires 2 arguments: <name> <vc-name>")
	}

	name := cmd.Args().Get(0)
	vcName := cmd.Args().Get(1)

	portGroups := cmd.StringSlice("port-group")
	if len(portGroups) == 0 {
		return fmt.Errorf("at least one --port-group is required")
	}

	gateway := cmd.String("gateway")
	if gateway == "" {
		return fmt.Errorf("--gateway is required")
	}
	netmask := cmd.String("netmask")
	if netmask == "" {
		return fmt.Errorf("--netmask is required")
	}

	rangeValues := cmd.StringSlice("ip-range")
	if len(rangeValues) == 0 {
		return fmt.Errorf("at least one --ip-range is required")
	}
	ipRanges, err := parseIPRanges(rangeValues)
	if err != nil {
		return err
	}

	sess, err := session.Restore(false)
	if err != nil {
		return err
	}

	platform := vcloud.NewPlatform(sess.Client)
	task, err := platform.CreateExternalNetwork(vcloud.ExternalNetworkSpec{
		Name:           name,
		VimServerName:  vcName,
		PortGroups:     portGroups,
		GatewayIP:      gateway,
		Netmask:        netmask,
		IPRanges:       ipRanges,
		Description:    cmd.String("description"),
		PrimaryDNSIP:   cmd.String("dns1"),
		SecondaryDNSIP: cmd.String("dns2"),
		DNSSuffix:      cmd.String("dns-suffix"),
	})
	if err != nil {
		return err
	}

	printTask(task)
	fmt.Println("External network created successfully.")
	return nil
}

func runExternalList(ctx context.Context, cmd *cli.Command) error {
	sess, err := session.Restore(false)
	if err != nil {
		return err
	}

	platform := vcloud.NewPlatform(sess.Client)
	networks, err := platform.ListExternalNetworks()
	if err != nil {
		return err
	}

	printNetworkList(networks, "external")
	return nil
}

func runExternalDelete(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("external network name is required")
	}
	name := cmd.Args().Get(0)

	if !cmd.Bool("yes") {
		if !confirm(fmt.Sprintf("Are you sure you want to delete external network %q?", name)) {
			fmt.Println("Deletion cancelled")
			return nil
		}
	}

	sess, err := session.Restore(false)
	if err != nil {
		return err
	}

	platform := vcloud.NewPlatform(sess.Client)
	task, err := platform.DeleteExternalNetwork(name)
	if err != nil {
		return err
	}

	printTask(task)
	fmt.Println("External network deleted successfully.")
	return nil
}

func runExternalUpdate(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("external network name is required")
	}
	name := cmd.Args().Get(0)

	sess, err := session.Restore(false)
	if err != nil {
		return err
	}

	platform := vcloud.NewPlatform(sess.Client)
	task, err := platform.UpdateExternalNetwork(name, cmd.String("name"), cmd.String("description"))
	if err != nil {
		return err
	}

	printTask(task)
	fmt.Println("External network updated successfully.")
	return nil
}
