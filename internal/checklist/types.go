package checklist

// Markdown checkbox markers used in daily checklist messages.
const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
)

// Section headers of the daily message.
const (
	MorningHeader = "*Утро*:"
	EveningHeader = "*Вечер*:"

	NoTasksLine = "_Нет задач на сегодня_"

	DebugPrefix = "🔧 DEBUG: "
)
