package digest

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

const (
	header        = "*🚀 BizTrack Daily Outreach Agenda*\n\n"
	noNotes       = "No notes provided."
	entrySeparate = "-------------------\n\n"
)

// Render formats the agenda message for one user. records are expected in
// agenda order; they are numbered from 1 as given.
func Render(userName string, records []domain.FollowUp) string {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "Hello %s, here is your structured call list for today:\n\n", userName)

	for i, r := range records {
		notes := strings.TrimSpace(r.Notes)
		if notes == "" {
			notes = noNotes
		}
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, r.ClientName)
		fmt.Fprintf(&b, "📝 _Context:_ %s\n", notes)
		fmt.Fprintf(&b, "📱 _Number:_ %s\n", r.Mobile)
		b.WriteString(entrySeparate)
	}
	return b.String()
}
