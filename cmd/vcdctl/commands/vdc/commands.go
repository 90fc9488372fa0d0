package vdc

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/catalystcommunity/vcdctl/internal/config"
	"github.com/catalystcommunity/vcdctl/internal/session"
	"github.com/urfave/cli/v3"
)

// Command is the top-level vdc command
var Command = &cli.Command{
	Name:  "vdc",
	Usage: "Work with org virtual datacenters",
	Description: `Virtual datacenter selection commands.

Direct and isolated network commands operate on the in-use VDC recorded
in the session profile. Select one with 'vcdctl vdc use <name>'.`,
	Commands: []*cli.Command{
		listCommand,
		useCommand,
	},
}

var listCommand = &cli.Command{
	Name:   "list",
	Usage:  "List the virtual datacenters visible to the session",
	Action: runList,
}

var useCommand = &cli.Command{
	Name:      "use",
	Usage:     "Select the in-use virtual datacenter",
	ArgsUsage: "<name>",
	Action:    runUse,
}

func runList(ctx context.Context, cmd *cli.Command) error {
	sess, err := session.Restore(false)
	if err != nil {
		return err
	}

	vdcs, err := sess.Client.ListVDCs()
	if err != nil {
		return err
	}

	if len(vdcs) == 0 {
		fmt.Println("No virtual datacenters found")
		return nil
	}

	inUse := ""
	if sess.Profile.VDCInUse != nil {
		inUse = sess.Profile.VDCInUse.ID
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tIN_USE")
	fmt.Fprintln(w, "----\t--\t------")
	for _, record := range vdcs {
		marker := ""
		if record.ID == inUse {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", record.Name, record.ID, marker)
	}
	w.Flush()

	return nil
}

func runUse(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("VDC name is required")
	}
	name := cmd.Args().Get(0)

	sess, err := session.Restore(false)
	if err != nil {
		return err
	}

	record, err := sess.Client.GetVDC(name)
	if err != nil {
		return err
	}

	sess.Profile.VDCInUse = &config.VDCRef{Name: record.Name, ID: record.ID}
	if err := config.SaveProfile(sess.Profile); err != nil {
		return err
	}

	fmt.Printf("Using VDC %s\n", record.Name)
	return nil
}
