package routes

import (
	"strconv"
	"time"

	"github.com/gareboard/gareboard/pkg/board"
	"github.com/gareboard/gareboard/pkg/inputs"
	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func SchedulesRouter(router fiber.Router) {
	router.Get("/:identifier/itinerary", getScheduleItinerary)
}

func getScheduleItinerary(c *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(c.Params("identifier"), 10, 64)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter identifier should be a schedule entry id",
		})
	}

	date := time.Now()
	if dateString := c.Query("date"); dateString != "" {
		parsed, ok := railnet.ParseFlexibleDate(dateString)
		if !ok {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter date should be a YYYY-MM-DD date",
			})
		}
		date = parsed
	}

	boardInputs, err := inputs.LoadBoardInputs(c.Context(), inputProvider)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Could not load schedules and perturbations",
		})
	}

	schedule, found := boardInputs.ScheduleByID(scheduleID)
	if !found {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find a schedule entry matching the identifier",
		})
	}

	itinerary := board.EffectiveItinerary(schedule, boardInputs.Perturbations, date)

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"detailed"},
	}, itinerary)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce the itinerary",
		})
	}

	return c.JSON(reduced)
}
