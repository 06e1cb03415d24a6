package jobs

import (
	"context"
	"time"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/logger"
)

// SendVisitReminders emails each agent about tomorrow's scheduled and
// confirmed visits.
func (jr *JobRunner) SendVisitReminders() {
	jr.runWithRecovery("SendVisitReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

		visits, err := jr.visitRepo.ListByDate(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list visits for reminders", "date", tomorrow, "error", err)
			return
		}

		sent := 0
		for _, visit := range visits {
			if visit.Status != domain.VisitStatusScheduled && visit.Status != domain.VisitStatusConfirmed {
				continue
			}

			agent, err := jr.userRepo.GetByID(ctx, visit.AgentID)
			if err != nil {
				logger.Error("Failed to load agent for reminder", "visit_id", visit.ID, "agent_id", visit.AgentID, "error", err)
				continue
			}
			listing, err := jr.listingRepo.GetByID(ctx, visit.ListingID)
			if err != nil {
				logger.Error("Failed to load listing for reminder", "visit_id", visit.ID, "listing_id", visit.ListingID, "error", err)
				continue
			}

			if err := jr.email.SendVisitReminder(ctx, agent.Email, agent.Name, listing.Title, visit.ClientName, visit.VisitDate, visit.VisitTime); err != nil {
				logger.Error("Failed to send visit reminder", "visit_id", visit.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent visit reminders", "date", tomorrow, "count", sent)
	})
}

// ExpireStaleVisits cancels yesterday's visits that were never confirmed or
// completed. Runs daily, so each run only has to look one day back.
func (jr *JobRunner) ExpireStaleVisits() {
	jr.runWithRecovery("ExpireStaleVisits", func() {
		ctx := context.Background()
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		visits, err := jr.visitRepo.ListByDate(ctx, yesterday)
		if err != nil {
			logger.Error("Failed to list stale visits", "date", yesterday, "error", err)
			return
		}

		expired := 0
		for _, visit := range visits {
			if visit.Status != domain.VisitStatusScheduled {
				continue
			}
			if err := jr.visitRepo.UpdateStatus(ctx, visit.ID, domain.VisitStatusCancelled); err != nil {
				logger.Error("Failed to expire visit", "visit_id", visit.ID, "error", err)
				continue
			}
			expired++
			logger.Debug("Expired stale visit", "visit_id", visit.ID, "listing_id", visit.ListingID, "date", visit.VisitDate)
		}

		logger.Info("Expired stale visits", "date", yesterday, "count", expired)
	})
}
