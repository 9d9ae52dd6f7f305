// File: /jobs/saved_item_cleanup_job.go
package jobs

import (
	"fmt"
	"gorm.io/gorm"
	"time"
	"wanderspot-api/repositories"
)

// SavedItemCleanupJob handles periodic cleanup of saved items whose post
// was deleted out-of-band (post deletion normally cascades, this catches
// anything that slipped through).
type SavedItemCleanupJob struct {
	repo   *repositories.SavedItemRepository
	ticker *time.Ticker
	done   chan bool
}

// NewSavedItemCleanupJob creates a new cleanup job
func NewSavedItemCleanupJob(db *gorm.DB, interval time.Duration) *SavedItemCleanupJob {
	return &SavedItemCleanupJob{
		repo:   repositories.NewSavedItemRepository(db),
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the cleanup job
func (j *SavedItemCleanupJob) Start() {
	fmt.Println("Saved item cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Saved item cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *SavedItemCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *SavedItemCleanupJob) cleanup() {
	removed, err := j.repo.DeleteOrphanedPosts()
	if err != nil {
		fmt.Printf("Error during saved item cleanup: %v\n", err)
		return
	}

	if removed > 0 {
		fmt.Printf("Saved item cleanup removed %d orphaned rows\n", removed)
	}
}
