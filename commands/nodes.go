package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
)

var Nodes = cli.Command{
	Name:  "nodes",
	Usage: "list the nodes currently visible in the tailnet",
	Action: func(_ *cli.Context) error {
		app, err := bootstrap()
		if err != nil {
			return err
		}

		nodes, err := app.discovery.Nodes(context.Background())
		if err != nil {
			return err
		}

		for _, n := range nodes {
			fmt.Println(n)
		}
		return nil
	},
}
