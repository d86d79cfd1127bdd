package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/michhsolis/Actividad-06-VPN/models"
)

var Analyze = cli.Command{
	Name:  "analyze",
	Usage: "probe the tailnet and print the lowest-latency path between two nodes",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "from", Usage: "source node DNS name"},
		cli.StringFlag{Name: "to", Usage: "destination node DNS name"},
	},
	Action: func(ctx *cli.Context) error {
		from := strings.TrimSpace(ctx.String("from"))
		to := strings.TrimSpace(ctx.String("to"))
		if from == "" || to == "" {
			return cli.NewExitError("both --from and --to are required", 2)
		}

		app, err := bootstrap()
		if err != nil {
			return err
		}

		result, err := app.analysis.Analyze(context.Background(), models.AnalysisRequest{
			Source:      from,
			Destination: to,
		})
		if err != nil {
			return err
		}

		if !result.Reachable {
			fmt.Printf("no path available from %s to %s\n", from, to)
			return nil
		}

		fmt.Printf("optimal path:  %s\n", strings.Join(result.Path, " -> "))
		fmt.Printf("total latency: %.1f ms\n", result.TotalLatencyMs)
		fmt.Printf("probes:        %d sent, %d failed\n", result.ProbeCount, result.FailedProbes)
		return nil
	},
}
