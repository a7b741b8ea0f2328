package slack

import (
	"fmt"
	"strings"

	"github.com/shubh-37/website-section-generator/internal/models"
	"github.com/slack-go/slack"
)

const usageText = "Usage: `/sections <website idea>`, for example `/sections Landing page for bakery`"

var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// resultBlocks renders a generated idea and its sections as Block Kit blocks
func resultBlocks(result *models.GenerateResult) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Website sections generated", false, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Idea #%d:* %s", result.WebsiteIdea.ID, mrkdwnEscaper.Replace(result.WebsiteIdea.Idea)),
				false, false),
			nil, nil,
		),
		slack.NewDividerBlock(),
	}

	for i, section := range result.Sections {
		text := fmt.Sprintf("*%d. %s* `%s`\n%s", i+1,
			mrkdwnEscaper.Replace(section.Title),
			section.Type,
			mrkdwnEscaper.Replace(section.Description),
		)
		if len(section.Features) > 0 {
			text += "\n• " + mrkdwnEscaper.Replace(strings.Join(section.Features, "\n• "))
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
			nil, nil,
		))
	}

	return blocks
}

// resultText is the notification fallback for clients that cannot show blocks
func resultText(result *models.GenerateResult) string {
	titles := make([]string, 0, len(result.Sections))
	for _, section := range result.Sections {
		titles = append(titles, section.Title)
	}
	return fmt.Sprintf("Generated %d sections for idea #%d: %s",
		len(result.Sections), result.WebsiteIdea.ID, strings.Join(titles, ", "))
}
