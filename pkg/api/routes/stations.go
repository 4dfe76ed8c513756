package routes

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gareboard/gareboard/pkg/board"
	"github.com/gareboard/gareboard/pkg/inputs"
	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func StationsRouter(router fiber.Router) {
	router.Get("/", listStations)
	router.Get("/:identifier", getStation)
	router.Get("/:identifier/board", getStationBoard)
}

func listStations(c *fiber.Ctx) error {
	directory, err := stationDirectory.Get(c.Context())
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Could not load the station directory",
		})
	}

	return c.JSON(directory.Stations())
}

func getStation(c *fiber.Ctx) error {
	directory, err := stationDirectory.Get(c.Context())
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Could not load the station directory",
		})
	}

	ref := directory.Canonicalise(railnet.ParseStationIdentifier(c.Params("identifier")))
	name := directory.ResolveName(ref)

	if name == "" {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find a station matching the identifier",
		})
	}

	return c.JSON(railnet.Station{
		ID:   ref.ID,
		Name: name,
		Code: ref.Code,
	})
}

func getStationBoard(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	direction, err := railnet.ParseDirection(c.Query("direction"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter direction should be departure or arrival",
		})
	}

	startDateTime := time.Now()
	if startDateTimeString := c.Query("datetime"); startDateTimeString != "" {
		startDateTime, err = time.Parse(time.RFC3339, startDateTimeString)

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter datetime should be an RFC3339/ISO8601 datetime",
			})
		}
	}

	cacheKey := fmt.Sprintf("board/%s/%s/%s", identifier, direction, startDateTime.Format("2006-01-02T15:04"))
	if cached, ok := boardCache.Get(c.Context(), cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	boardInputs, err := inputs.LoadBoardInputs(c.Context(), inputProvider)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Could not load schedules and perturbations",
		})
	}

	directory := boardInputs.Directory()
	station := directory.Canonicalise(railnet.ParseStationIdentifier(identifier))

	if directory.ResolveName(station) == "" {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find a station matching the identifier",
		})
	}

	generated := board.Generate(station, direction, boardInputs.Schedules, boardInputs.Perturbations, directory, startDateTime)

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, generated)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce the board",
		})
	}

	payload, err := json.Marshal(reduced)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not marshal the board",
		})
	}

	boardCache.Set(c.Context(), cacheKey, string(payload))

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}
