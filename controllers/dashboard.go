package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/scheduler/cron"
	"github.com/glowbook/scheduler/redis"
	"github.com/glowbook/scheduler/scheduler"
	"github.com/glowbook/scheduler/utils"
)

// GetDashboardOverview returns the day's booking stats. It serves the
// cron-maintained redis snapshot when one exists and recomputes otherwise.
// GET /dashboard/overview?date=YYYY-MM-DD (default today)
func GetDashboardOverview(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = utils.FormatDate(time.Now())
	}

	if redis.Client != nil {
		cached, err := redis.Client.Get(redis.Ctx, cron.StatsCacheKey(date)).Bytes()
		if err == nil {
			var stats scheduler.DayStats
			if json.Unmarshal(cached, &stats) == nil {
				return c.JSON(fiber.Map{
					"stats":  stats,
					"cached": true,
				})
			}
		}
	}

	stats, err := engine.StatsForDate(date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"stats":  stats,
		"cached": false,
	})
}
