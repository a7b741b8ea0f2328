package slack

import (
	"context"

	"github.com/shubh-37/website-section-generator/internal/models"
)

// Notifier announces every generated idea in one channel
type Notifier struct {
	client    *Client
	channelID string
}

func NewNotifier(client *Client, channelID string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
	}
}

func (n *Notifier) NotifyGenerated(ctx context.Context, result *models.GenerateResult) error {
	return n.client.SendMessageWithBlocks(ctx, n.channelID, resultText(result), resultBlocks(result), "")
}
