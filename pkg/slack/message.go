package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var categoryEmoji = map[string]string{
	"failed":   ":x:",
	"timeout":  ":hourglass:",
	"warning":  ":warning:",
	"exceeded": ":no_entry:",
}

func taskURL(taskID, dashboardURL string) string {
	return fmt.Sprintf("%s/tasks/%s", dashboardURL, taskID)
}

// BuildTaskFailureMessage creates Block Kit blocks for a terminal task
// failure or sweeper timeout notice.
func BuildTaskFailureMessage(taskID, category, errorMessage, dashboardURL string) []goslack.Block {
	emoji := categoryEmoji[category]
	if emoji == "" {
		emoji = categoryEmoji["failed"]
	}
	label := "Task Failed"
	if category == "timeout" {
		label = "Task Timed Out"
	}

	headerText := fmt.Sprintf("%s *%s* `%s`", emoji, label, taskID)
	if errorMessage != "" {
		headerText += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(errorMessage))
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}
	if dashboardURL != "" {
		btn := goslack.NewButtonBlockElement("", "",
			goslack.NewTextBlockObject(goslack.PlainTextType, "View Task", false, false))
		btn.URL = taskURL(taskID, dashboardURL)
		blocks = append(blocks, goslack.NewActionBlock("", btn))
	}
	return blocks
}

// BuildBudgetMessage creates Block Kit blocks for a budget warning or
// budget exceeded notice.
func BuildBudgetMessage(exceeded bool, spentCents float64, limitCents int64) []goslack.Block {
	emoji := categoryEmoji["warning"]
	label := "Daily Budget Warning"
	detail := "Premium models will be blocked when the limit is reached."
	if exceeded {
		emoji = categoryEmoji["exceeded"]
		label = "Daily Budget Exceeded"
		detail = "Premium models are blocked until the daily reset."
	}

	text := fmt.Sprintf("%s *%s*\nSpent $%.2f of the $%.2f daily limit. %s",
		emoji, label, spentCents/100, float64(limitCents)/100, detail)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
