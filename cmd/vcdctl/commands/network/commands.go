package network

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/catalystcommunity/vcdctl/internal/vcloud"
	"github.com/urfave/cli/v3"
)

// Command is the top-level network command
var Command = &cli.Command{
	Name:  "network",
	Usage: "Work with vCloud Director networks",
	Description: `Network provisioning commands for vCloud Director.

Three kinds of networks are managed here:

  external   networks backed by a vCenter port group, managed at the
             system level (System Administrators only)
  direct     org VDC networks bridged directly to an external network,
             scoped to the in-use VDC
  isolated   org VDC networks with no external bridge, optionally with a
             private DHCP pool, scoped to the in-use VDC

Direct and isolated commands require a VDC selection; set one with
'vcdctl vdc use <name>'.`,
	Commands: []*cli.Command{
		ExternalCommand,
		DirectCommand,
		IsolatedCommand,
	},
}

// stdin is swapped out by tests that drive the confirmation prompt
var stdin io.Reader = os.Stdin

// confirm is the explicit gate in front of every destructive call. It is
// invoked by the handler before the remote call is issued; declining means
// no request is made and the command exits successfully.
func confirm(prompt string) bool {
	fmt.Printf("%s (yes/no): ", prompt)
	var response string
	fmt.Fscanln(stdin, &response)
	return strings.ToLower(response) == "yes"
}

// sharedFlag resolves the --shared/--not-shared pair. Networks are private
// by default and --not-shared overrides --shared when both are given.
func sharedFlag(cmd *cli.Command) bool {
	return cmd.Bool("shared") && !cmd.Bool("not-shared")
}

// printTask reports the first queued task of an asynchronous operation.
// Tasks are never polled to completion; sequencing is the caller's job.
func printTask(task *vcloud.Task) {
	fmt.Printf("task: %s (%s): %s\n", task.ID, task.Operation, task.Status)
}

// printNetworkList renders name records in the order the server reported
func printNetworkList(networks []vcloud.NetworkSummary, kind string) {
	if len(networks) == 0 {
		fmt.Printf("No %s networks found\n", kind)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME")
	fmt.Fprintln(w, "----")
	for _, net := range networks {
		fmt.Fprintln(w, net.Name)
	}
	w.Flush()
}

// parseIPRanges converts repeated start-end flag values into IP ranges,
// preserving input order
func parseIPRanges(values []string) ([]vcloud.IPRange, error) {
	ranges := make([]vcloud.IPRange, 0, len(values))
	for _, value := range values {
		start, end, ok := strings.Cut(value, "-")
		if !ok || start == "" || end == "" {
			return nil, fmt.Errorf("invalid IP range %q: expected StartAddress-EndAddress format", value)
		}
		ranges = append(ranges, vcloud.IPRange{Start: start, End: end})
	}
	return ranges, nil
}
