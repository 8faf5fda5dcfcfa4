// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs use github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// DeliveryProgressJob runs AdvanceDeliveriesCommand on every tick (default every second):
// it re-registers orders out for delivery after a restart, drops finished ones and moves
// every tracked courier one step towards the buyer.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(advanceHandler, time.Second, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed tick is logged and the next tick retries. Overlapping ticks are skipped.
package jobs
