package api

import (
	"os"

	"github.com/gareboard/gareboard/pkg/inputs"
	"github.com/gareboard/gareboard/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						log.Warn().Err(err).Msg("Redis unavailable - board response cache disabled")
					}

					var provider inputs.Provider = inputs.NewAdminAPISource()
					if datasetPath := os.Getenv("GAREBOARD_DATASET"); datasetPath != "" {
						provider = &inputs.DatasetSource{Path: datasetPath}
					}

					return SetupServer(c.String("listen"), provider)
				},
			},
		},
	}
}
