package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/michhsolis/Actividad-06-VPN/commands"
)

func main() {
	app := cli.NewApp()
	app.Name = "tailmesh"
	app.Usage = "probe tailnet latency and find the fastest path between nodes"
	app.Version = "0.1.0"

	app.Commands = []cli.Command{
		commands.Analyze,
		commands.Nodes,
		commands.Transfer,
		commands.Serve,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
