package scheduler

import (
	"fmt"
	"log"

	"github.com/nusava/nusava-backend/repositories"
	"github.com/nusava/nusava-backend/search"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily search reindex. Inline index writes are
// best-effort, so the nightly rebuild is what guarantees the index
// converges with the database.
type Scheduler struct {
	cron         *cron.Cron
	searchClient *search.Client
	propertyRepo *repositories.PropertyRepository
	isRunning    bool
}

// NewScheduler creates a scheduler for the given search client
func NewScheduler(searchClient *search.Client) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		searchClient: searchClient,
		propertyRepo: repositories.NewPropertyRepository(),
	}
}

// Start registers the daily reindex job. runTime is "HH:MM".
func (s *Scheduler) Start(runTime string) error {
	if s.searchClient == nil {
		log.Println("Scheduler: search index not configured, reindex job disabled")
		return nil
	}

	cronSpec := parseDailyRunTime(runTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: starting search reindex...")
		if err := s.Reindex(); err != nil {
			log.Printf("Scheduler: search reindex failed: %v", err)
		} else {
			log.Println("Scheduler: search reindex completed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: started with daily reindex at %s (cron: %s)", runTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: stopped")
	}
}

// Reindex pushes every publicly visible property into the search index
func (s *Scheduler) Reindex() error {
	properties, err := s.propertyRepo.FindVisible()
	if err != nil {
		return err
	}

	log.Printf("Scheduler: indexing %d properties", len(properties))
	return s.searchClient.IndexProperties(properties)
}

// parseDailyRunTime converts HH:MM to a cron specification.
// Example: "02:00" -> "0 2 * * *"
func parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 && hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	log.Printf("Scheduler: invalid run time '%s', using default 03:00", timeStr)
	return "0 3 * * *"
}
