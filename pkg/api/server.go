package api

import (
	"time"

	"github.com/gareboard/gareboard/pkg/api/cachedboards"
	"github.com/gareboard/gareboard/pkg/api/routes"
	"github.com/gareboard/gareboard/pkg/inputs"
	"github.com/gareboard/gareboard/pkg/redis_client"
	"github.com/gofiber/fiber/v2"
)

const stationDirectoryTTL = 5 * time.Minute

func SetupServer(listen string, provider inputs.Provider) error {
	responseCache := &cachedboards.Cache{}
	if redis_client.Client != nil {
		responseCache.Setup()
	}

	routes.Setup(provider, inputs.NewCachedDirectory(provider, stationDirectoryTTL), responseCache)

	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/gares"))
	routes.SchedulesRouter(group.Group("/horaires"))

	return webApp.Listen(listen)
}
