package checklist

import (
	"fmt"
	"strings"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
)

// Service renders session state into the Slack messages the team sees:
// the daily checklist and the follow-up reminder.
type Service interface {
	// FormatDaily renders the day's grouped checklist. Debug mode gets a
	// visible prefix so a simulated run is never mistaken for the real one.
	FormatDaily(cl routine.Checklist, mode model.Mode) string

	// FormatReminder renders the outstanding-task follow-up. It returns ""
	// when there is nothing to remind about; callers must not post then.
	FormatReminder(out routine.Outstanding, currentTime, dateHeader, teamMention string) string

	// FormatTaskLine renders one checklist entry.
	FormatTaskLine(t model.TaskDefinition) string
}

type service struct{}

func New() Service {
	return &service{}
}

func (s *service) FormatDaily(cl routine.Checklist, mode model.Mode) string {
	header := fmt.Sprintf("🎓 Routine tasks for *%s*", cl.DateHeader)
	if mode == model.ModeDebug {
		header = DebugPrefix + header
	}

	if cl.IsEmpty() {
		return header + "\n\n" + NoTasksLine
	}

	parts := []string{header}

	if len(cl.Ungrouped) > 0 {
		parts = append(parts, "")
		for _, t := range cl.Ungrouped {
			parts = append(parts, s.FormatTaskLine(t))
		}
	}
	if len(cl.Morning) > 0 {
		parts = append(parts, "\n"+MorningHeader)
		for _, t := range cl.Morning {
			parts = append(parts, s.FormatTaskLine(t))
		}
	}
	if len(cl.Evening) > 0 {
		parts = append(parts, "\n"+EveningHeader)
		for _, t := range cl.Evening {
			parts = append(parts, s.FormatTaskLine(t))
		}
	}

	return strings.Join(parts, "\n")
}

func (s *service) FormatTaskLine(t model.TaskDefinition) string {
	var line string
	if t.Deadline != nil {
		line = fmt.Sprintf("%s *%s* до %s", CheckboxUnchecked, t.Name, t.Deadline)
	} else {
		line = fmt.Sprintf("%s *%s*", CheckboxUnchecked, t.Name)
	}

	if t.AsanaURL != "" {
		line += fmt.Sprintf(" • <%s|Asana>", t.AsanaURL)
	}
	if t.Assignee != "" {
		line += fmt.Sprintf(" • <@%s>", t.Assignee)
	}
	if t.Comments != "" {
		line += fmt.Sprintf("\n    _%s_", t.Comments)
	}
	return line
}

func (s *service) FormatReminder(out routine.Outstanding, currentTime, dateHeader, teamMention string) string {
	if out.IsEmpty() {
		return ""
	}

	parts := []string{fmt.Sprintf("⏰ Напоминание в %s - %s", currentTime, dateHeader)}

	if len(out.Overdue) > 0 {
		parts = append(parts, "\n🚨 *ПРОСРОЧЕННЫЕ ЗАДАЧИ:*")
		for _, t := range out.Overdue {
			parts = append(parts, fmt.Sprintf("• *%s* (дедлайн был в %s)", t.Name, t.Deadline))
		}
	}

	if len(out.Pending) > 0 {
		parts = append(parts, "\n📋 *НЕВЫПОЛНЕННЫЕ ЗАДАЧИ:*")
		for _, t := range out.Pending {
			line := fmt.Sprintf("• *%s*", t.Name)
			if t.Deadline != nil {
				line += fmt.Sprintf(" (до %s)", t.Deadline)
			}
			parts = append(parts, line)
		}
	}

	if teamMention != "" {
		parts = append(parts, "\n"+teamMention)
	}

	return strings.Join(parts, "\n")
}
