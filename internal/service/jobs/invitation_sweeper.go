package jobs

import (
	"time"

	"eventide/internal/utils"

	"github.com/labstack/gommon/log"
)

const (
	// Terminal invitations are kept for a month so recipients can still
	// see what they answered, then purged.
	InviteRetentionMillis = int64(30 * 24 * time.Hour / time.Millisecond)
)

type InvitationRepository interface {
	DeleteTerminalBefore(cutoff int64) (int64, error)
}

// InvitationSweeper purges accepted and declined invitations past the
// retention window. It runs on the cron scheduler, not its own ticker.
type InvitationSweeper struct {
	inviteRepo InvitationRepository
}

func NewInvitationSweeper(repo InvitationRepository) *InvitationSweeper {
	return &InvitationSweeper{inviteRepo: repo}
}

func (s *InvitationSweeper) Run() {
	cutoff := utils.NowUTC() - InviteRetentionMillis

	purged, err := s.inviteRepo.DeleteTerminalBefore(cutoff)
	if err != nil {
		log.Errorf("Sweeper: failed to delete terminal invitations: %v", err)
		return
	}

	if purged > 0 {
		log.Infof("Sweeper: purged %d terminal invitations", purged)
	}
}
