package boardcli

import (
	"context"
	"fmt"
	"time"

	"github.com/gareboard/gareboard/pkg/board"
	"github.com/gareboard/gareboard/pkg/inputs"
	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Station board debugging tools",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "compute and dump a station board",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "station",
						Usage:    "station id, code or name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "direction",
						Value: string(railnet.DirectionDeparture),
						Usage: "departure or arrival",
					},
					&cli.StringFlag{
						Name:  "datetime",
						Usage: "reference instant (RFC3339), defaults to now",
					},
					&cli.StringFlag{
						Name:  "dataset",
						Usage: "local dataset file instead of the admin API",
					},
				},
				Action: showBoard,
			},
		},
	}
}

func showBoard(c *cli.Context) error {
	direction, err := railnet.ParseDirection(c.String("direction"))
	if err != nil {
		return err
	}

	now := time.Now()
	if datetime := c.String("datetime"); datetime != "" {
		now, err = time.Parse(time.RFC3339, datetime)
		if err != nil {
			return err
		}
	}

	var provider inputs.Provider = inputs.NewAdminAPISource()
	if dataset := c.String("dataset"); dataset != "" {
		provider = &inputs.DatasetSource{Path: dataset}
	}

	boardInputs, err := inputs.LoadBoardInputs(context.Background(), provider)
	if err != nil {
		return err
	}

	directory := boardInputs.Directory()
	station := directory.Canonicalise(railnet.ParseStationIdentifier(c.String("station")))

	generated := board.Generate(station, direction, boardInputs.Schedules, boardInputs.Perturbations, directory, now)

	fmt.Printf("%# v\n", pretty.Formatter(generated))

	return nil
}
