package cron

import (
	"encoding/json"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/glowbook/scheduler/redis"
	"github.com/glowbook/scheduler/scheduler"
	"github.com/glowbook/scheduler/utils"
)

const statsCacheTTL = 10 * time.Minute

// StatsCacheKey is the redis key for a day's cached dashboard snapshot.
func StatsCacheKey(date string) string {
	return "stats:" + date
}

// StartCronJobs starts the scheduler that keeps today's dashboard snapshot
// warm in redis. The dashboard reads the cache first and falls back to a
// live computation, so a stale or missing snapshot is never fatal.
func StartCronJobs(engine *scheduler.Engine) {
	c := cron.New()
	// Refresh every 5 minutes.
	_, err := c.AddFunc("*/5 * * * *", func() { refreshTodayStats(engine) })
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for dashboard stats")
}

// refreshTodayStats recomputes today's stats and caches them with a TTL.
func refreshTodayStats(engine *scheduler.Engine) {
	today := utils.FormatDate(time.Now())
	stats, err := engine.StatsForDate(today)
	if err != nil {
		log.Printf("Error computing stats for %s: %v", today, err)
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Error encoding stats for %s: %v", today, err)
		return
	}
	if err := redis.Client.Set(redis.Ctx, StatsCacheKey(today), payload, statsCacheTTL).Err(); err != nil {
		log.Printf("Error caching stats for %s: %v", today, err)
	}
}
