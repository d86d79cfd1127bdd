package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/michhsolis/Actividad-06-VPN/models"
)

var Transfer = cli.Command{
	Name:      "transfer",
	Usage:     "copy a local file to a remote host over scp",
	ArgsUsage: "<local-path> <user@host:/path>",
	Action: func(ctx *cli.Context) error {
		localPath := ctx.Args().Get(0)
		target := ctx.Args().Get(1)
		if localPath == "" || target == "" {
			return cli.NewExitError("usage: transfer <local-path> <user@host:/path>", 2)
		}

		app, err := bootstrap()
		if err != nil {
			return err
		}

		result, err := app.transfer.Transfer(context.Background(), models.TransferRequest{
			LocalPath: localPath,
			Target:    target,
		})
		if err != nil {
			return err
		}

		fmt.Printf("transferred %s to %s\n", result.LocalPath, result.Target)
		return nil
	},
}
