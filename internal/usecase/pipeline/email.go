package pipeline

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/teamsync/internal/domain/entities"
)

func confirmationSubject(title string, count int) string {
	noun := "Action Items"
	if count == 1 {
		noun = "Action Item"
	}
	return fmt.Sprintf("%d %s Extracted from %q", count, noun, title)
}

var priorityColors = map[entities.ActionItemPriority]string{
	entities.ActionItemPriorityHigh:   "#ef4444",
	entities.ActionItemPriorityMedium: "#f59e0b",
	entities.ActionItemPriorityLow:    "#10b981",
}

// renderConfirmationEmail builds the HTML body listing every extracted item
func renderConfirmationEmail(title string, items []*entities.ActionItem) string {
	var list strings.Builder
	for _, item := range items {
		dueText := "Not specified"
		if item.DueDate != nil {
			dueText = item.DueDate.Format("Mon, Jan 2 2006")
		}

		color, ok := priorityColors[item.Priority]
		if !ok {
			color = "#6b7280"
		}

		fmt.Fprintf(&list, `
      <div style="margin-bottom: 16px; padding: 12px; border-left: 4px solid %s; background-color: #f9fafb;">
        <p style="margin: 0 0 8px 0; font-weight: 600; color: #111827;">%s</p>
        <p style="margin: 0; font-size: 14px; color: #6b7280;">
          <strong>Assignee:</strong> %s &bull;
          <strong>Due:</strong> %s &bull;
          <span style="color: %s; text-transform: uppercase; font-weight: 600;">%s priority</span>
        </p>
      </div>`,
			color, item.Description, item.Assignee, dueText, color, item.Priority)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #374151; background-color: #f3f4f6; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px;">
      <div style="background-color: #2563eb; color: #ffffff; padding: 24px; border-radius: 8px 8px 0 0;">
        <h1 style="margin: 0; font-size: 24px;">Action Items Extracted</h1>
      </div>
      <div style="padding: 24px;">
        <p style="margin: 0 0 24px 0; font-size: 16px; color: #6b7280;">
          We extracted %d action item(s) from %q:
        </p>
        %s
      </div>
      <div style="padding: 16px 24px; background-color: #f9fafb; border-radius: 0 0 8px 8px; border-top: 1px solid #e5e7eb;">
        <p style="margin: 0; font-size: 12px; color: #6b7280; text-align: center;">
          Powered by TeamSync
        </p>
      </div>
    </div>
  </body>
</html>`, len(items), title, list.String())
}
