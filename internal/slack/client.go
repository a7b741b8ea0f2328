package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type Client struct {
	api    *slack.Client
	botID  string
	logger *zap.Logger
}

// NewClient authenticates the bot token. An error means Slack should be left
// disabled; the caller decides whether that is fatal.
func NewClient(ctx context.Context, token string, logger *zap.Logger, opts ...slack.Option) (*Client, error) {
	api := slack.New(token, opts...)

	authTest, err := api.AuthTestContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with slack: %w", err)
	}

	logger.Info("slack client authenticated",
		zap.String("team", authTest.Team),
		zap.String("botUser", authTest.User),
	)

	return &Client{
		api:    api,
		botID:  authTest.UserID,
		logger: logger,
	}, nil
}

func (c *Client) GetBotID() string {
	return c.botID
}

func (c *Client) SendMessage(ctx context.Context, channelID, message string) error {
	_, _, err := c.api.PostMessageContext(ctx,
		channelID,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", channelID, err)
	}
	return nil
}

// SendMessageWithBlocks posts blocks with a plain text fallback. A non-empty
// threadTS replies in that thread.
func (c *Client) SendMessageWithBlocks(ctx context.Context, channelID, fallback string, blocks []slack.Block, threadTS string) error {
	options := []slack.MsgOption{
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(blocks...),
	}
	if threadTS != "" {
		options = append(options, slack.MsgOptionTS(threadTS))
	}

	if _, _, err := c.api.PostMessageContext(ctx, channelID, options...); err != nil {
		return fmt.Errorf("failed to post blocks to %s: %w", channelID, err)
	}
	return nil
}
