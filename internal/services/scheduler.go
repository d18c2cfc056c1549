package services

import (
	"time"

	"github.com/RasuriVIGNESH/peerconnect/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic maintenance: the hourly sweep that expires stale
// PENDING invitations past their TTL.
type Scheduler struct {
	cron        *cron.Cron
	invitations *InvitationService
	ttl         time.Duration
}

func NewScheduler(invitations *InvitationService, ttlDays int) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		invitations: invitations,
		ttl:         time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// Start registers the expiry sweep and begins the cron loop. The sweep also
// runs once at startup so a restarted server catches up immediately.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	go s.sweep()
	logger.Infof("[Scheduler] invitation expiry sweep scheduled hourly (ttl=%s)", s.ttl)
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) sweep() {
	if _, err := s.invitations.ExpireStale(s.ttl); err != nil {
		logger.Errorf("[Scheduler] invitation expiry sweep failed: %v", err)
	}
}
