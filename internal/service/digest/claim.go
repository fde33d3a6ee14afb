package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

// NopClaimer grants every claim. It is used when Redis is disabled and a
// single replica runs the job.
type NopClaimer struct{}

// Claim always succeeds.
func (NopClaimer) Claim(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

// ClaimKey identifies one user's digest for one reminder minute.
func ClaimKey(day time.Time, clock string, userID uuid.UUID) string {
	return fmt.Sprintf("digest:%s:%s:%s", domain.FormatDate(day), clock, userID)
}
