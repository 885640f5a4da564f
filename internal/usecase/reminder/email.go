package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/domain/events"
)

func reminderSubject(evt events.ReminderDue) string {
	noun := "Action Items"
	if len(evt.Actions) == 1 {
		noun = "Action Item"
	}
	state := "Due Today"
	if evt.OverdueCount > 0 {
		state = "Overdue"
	}
	return fmt.Sprintf("%d %s %s - TeamSync", len(evt.Actions), noun, state)
}

// renderReminderEmail builds the HTML reminder body for one assignee batch
func renderReminderEmail(evt events.ReminderDue, today time.Time) string {
	var list strings.Builder
	for _, action := range evt.Actions {
		statusColor := "#f59e0b"
		statusText := "DUE TODAY"
		if action.OverdueBy(today) {
			statusColor = "#ef4444"
			statusText = "OVERDUE"
		}

		priorityColor, ok := map[entities.ActionItemPriority]string{
			entities.ActionItemPriorityHigh:   "#ef4444",
			entities.ActionItemPriorityMedium: "#f59e0b",
			entities.ActionItemPriorityLow:    "#10b981",
		}[action.Priority]
		if !ok {
			priorityColor = "#6b7280"
		}

		dueText := "Not specified"
		if action.DueDate != nil {
			dueText = action.DueDate.Format("Mon, Jan 2 2006")
		}

		fmt.Fprintf(&list, `
      <div style="margin-bottom: 16px; padding: 12px; border-left: 4px solid %s; background-color: #f9fafb;">
        <p style="margin: 0 0 8px 0; font-weight: 600; color: #111827;">%s
          <span style="background-color: %s; color: white; padding: 2px 8px; border-radius: 4px; font-size: 11px; font-weight: 600; margin-left: 8px;">%s</span>
        </p>
        <p style="margin: 0; font-size: 14px; color: #6b7280;">
          <strong>Due:</strong> %s &bull;
          <span style="color: %s; text-transform: uppercase; font-weight: 600;">%s priority</span>
        </p>
      </div>`,
			statusColor, action.Description, statusColor, statusText, dueText, priorityColor, action.Priority)
	}

	header := fmt.Sprintf("You have %d action item(s) due today", evt.DueCount)
	headerColor := "#f59e0b"
	if evt.OverdueCount > 0 {
		headerColor = "#dc2626"
		header = fmt.Sprintf("You have %d overdue action item(s)", evt.OverdueCount)
		if evt.DueCount > 0 {
			header += fmt.Sprintf(" and %d due today", evt.DueCount)
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #374151; background-color: #f3f4f6; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px;">
      <div style="background-color: %s; color: #ffffff; padding: 24px; border-radius: 8px 8px 0 0;">
        <h1 style="margin: 0; font-size: 24px;">Action Items Reminder</h1>
      </div>
      <div style="padding: 24px;">
        <p style="margin: 0 0 8px 0; font-size: 18px; color: #111827; font-weight: 600;">Hi %s,</p>
        <p style="margin: 0 0 24px 0; font-size: 16px; color: #6b7280;">%s:</p>
        %s
        <div style="margin-top: 32px; padding: 16px; background-color: #fef3c7; border-radius: 6px; border: 1px solid #f59e0b;">
          <p style="margin: 0; font-size: 14px; color: #92400e;">
            <strong>Tip:</strong> Mark items as complete in TeamSync to stop receiving reminders.
          </p>
        </div>
      </div>
      <div style="padding: 16px 24px; background-color: #f9fafb; border-radius: 0 0 8px 8px; border-top: 1px solid #e5e7eb;">
        <p style="margin: 0; font-size: 12px; color: #6b7280; text-align: center;">
          Powered by TeamSync
        </p>
      </div>
    </div>
  </body>
</html>`, headerColor, evt.Assignee, header, list.String())
}
