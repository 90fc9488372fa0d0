package network

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/vcdctl/internal/session"
	"github.com/catalystcommunity/vcdctl/internal/vcloud"
	"github.com/urfave/cli/v3"
)

// IsolatedCommand is the network isolated subcommand
var IsolatedCommand = &cli.Command{
	Name:  "isolated",
	Usage: "Work with isolated org VDC networks",
	Description: `Manage isolated org VDC networks.

Isolated networks have no external bridge and can optionally run a
private DHCP pool. All isolated network commands operate on the in-use
VDC; select one with 'vcdctl vdc use <name>'.`,
	Commands: []*cli.Command{
		isolatedCreateCommand,
		isolatedListCommand,
		isolatedDeleteCommand,
	},
}

var isolatedCreateCommand = &cli.Command{
	Name:      "create",
	Usage:     "Create a new isolated org VDC network",
	ArgsUsage: "<name>",
	Description: `Create an isolated org VDC network, optionally with a DHCP pool.

DHCP and DNS optionals are forwarded to the server as given; consistency
checks such as the DHCP range fitting the subnet are the server's.

Example:
  vcdctl network isolated create iso-net1 \
      --gateway 192.168.1.1 --netmask 255.255.255.0 \
      --description 'Isolated VDC network' \
      --dns1 8.8.8.8 --dns-suffix example.com \
      --ip-range-start 192.168.1.100 --ip-range-end 192.168.1.199 \
      --dhcp-enabled --default-lease-time 3600 --max-lease-time 7200 \
      --dhcp-ip-range-start 192.168.1.100 --dhcp-ip-range-end 192.168.1.199`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "gateway",
			Aliases: []string{"g"},
			Usage:   "IP address of the gateway of the new network",
		},
		&cli.StringFlag{
			Name:    "netmask",
			Aliases: []string{"n"},
			Usage:   "Network mask for the gateway",
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
		&cli.StringFlag{
			Name:  "ip-range-start",
			Usage: "Start address of the static IP allocation pool",
		},
		&cli.StringFlag{
			Name:  "ip-range-end",
			Usage: "End address of the static IP allocation pool",
		},
		&cli.BoolFlag{
			Name:  "dhcp-enabled",
			Usage: "Enable the DHCP service on the new network",
		},
		&cli.IntFlag{
			Name:  "default-lease-time",
			Usage: "Default lease in seconds for DHCP addresses",
		},
		&cli.IntFlag{
			Name:  "max-lease-time",
			Usage: "Max lease in seconds for DHCP addresses",
		},
		&cli.StringFlag{
			Name:  "dhcp-ip-range-start",
			Usage: "Start address of the IP range used for DHCP addresses",
		},
		&cli.StringFlag{
			Name:  "dhcp-ip-range-end",
			Usage: "End address of the IP range used for DHCP addresses",
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
	Action: runIsolatedCreate,
}

var isolatedListCommand = &cli.Command{
	Name:   "list",
	Usage:  "List all isolated org VDC networks in the in-use VDC",
	Action: runIsolatedList,
}

var isolatedDeleteCommand = &cli.Command{
	Name:      "delete",
	Usage:     "Delete an isolated org VDC network in the in-use VDC",
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
	Action: runIsolatedDelete,
}

func runIsolatedCreate(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("network name is required")
	}
	name := cmd.Args().Get(0)

	gateway := cmd.String("gateway")
	if gateway == "" {
		return fmt.Errorf("--gateway is required")
	}
	netmask := cmd.String("netmask")
	if netmask == "" {
		return fmt.Errorf("--netmask is required")
	}

	sess, err := session.Restore(true)
	if err != nil {
		return err
	}
	vdc, err := sess.VDC()
	if err != nil {
		return err
	}

	spec := vcloud.IsolatedNetworkSpec{
		Name:           name,
		GatewayIP:      gateway,
		Netmask:        netmask,
		Description:    cmd.String("description"),
		PrimaryDNSIP:   cmd.String("dns1"),
		SecondaryDNSIP: cmd.String("dns2"),
		DNSSuffix:      cmd.String("dns-suffix"),
		IPRangeStart:   cmd.String("ip-range-start"),
		IPRangeEnd:     cmd.String("ip-range-end"),
		IsShared:       sharedFlag(cmd),
	}
	if cmd.Bool("dhcp-enabled") {
		spec.DHCP = &vcloud.DHCPSpec{
			Enabled:          true,
			DefaultLeaseTime: cmd.Int("default-lease-time"),
			MaxLeaseTime:     cmd.Int("max-lease-time"),
			RangeStart:       cmd.String("dhcp-ip-range-start"),
			RangeEnd:         cmd.String("dhcp-ip-range-end"),
		}
	}

	task, err := vdc.CreateIsolatedNetwork(spec)
	if err != nil {
		return err
	}

	printTask(task)
	return nil
}

func runIsolatedList(ctx context.Context, cmd *cli.Command) error {
	sess, err := session.Restore(true)
	if err != nil {
		return err
	}
	vdc, err := sess.VDC()
	if err != nil {
		return err
	}

	networks, err := vdc.ListIsolatedNetworks()
	if err != nil {
		return err
	}

	printNetworkList(networks, "isolated")
	return nil
}

func runIsolatedDelete(ctx context.Context, cmd *cli.Command) error {
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

	task, err := vdc.DeleteIsolatedNetwork(name, cmd.Bool("force"))
	if err != nil {
		return err
	}

	printTask(task)
	return nil
}
