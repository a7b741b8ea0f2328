package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// EventHandler serves the Events API endpoint. Mentioning the bot with an
// idea generates sections and replies in the mention's thread.
type EventHandler struct {
	client        *Client
	generator     Generator
	signingSecret string
	logger        *zap.Logger
}

func NewEventHandler(client *Client, generator Generator, signingSecret string, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		client:        client,
		generator:     generator,
		signingSecret: signingSecret,
		logger:        logger,
	}
}

func (h *EventHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSlackBody))
	if err != nil {
		h.logger.Warn("failed to read event body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sv, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.logger.Warn("rejected event", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if _, err := sv.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := sv.Ensure(); err != nil {
		h.logger.Warn("event signature mismatch", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Slack redelivers when the first ack was slow; the idea was already stored.
	if r.Header.Get("X-Slack-Retry-Num") != "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.logger.Warn("failed to parse event", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		switch ev := event.InnerEvent.Data.(type) {
		case *slackevents.AppMentionEvent:
			if err := h.handleAppMention(r.Context(), ev); err != nil {
				h.logger.Error("error handling mention", zap.Error(err))
			}
		default:
			h.logger.Debug("ignoring event", zap.String("type", event.InnerEvent.Type))
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *EventHandler) handleAppMention(ctx context.Context, ev *slackevents.AppMentionEvent) error {
	if ev.BotID != "" {
		return nil
	}

	threadTS := ev.ThreadTimeStamp
	if threadTS == "" {
		threadTS = ev.TimeStamp
	}

	idea := stripMention(ev.Text, h.client.GetBotID())
	if idea == "" {
		return h.client.SendMessage(ctx, ev.Channel, usageText)
	}

	result, err := h.generator.Generate(ctx, idea)
	if err != nil {
		if replyErr := h.client.SendMessage(ctx, ev.Channel, "Failed to generate sections"); replyErr != nil {
			h.logger.Warn("failed to send failure reply",
				zap.String("channel", ev.Channel),
				zap.Error(replyErr),
			)
		}
		return err
	}

	return h.client.SendMessageWithBlocks(ctx, ev.Channel, resultText(result), resultBlocks(result), threadTS)
}

// stripMention removes the bot's own mention and trims the rest
func stripMention(text, botID string) string {
	if botID != "" {
		text = strings.Replace(text, "<@"+botID+">", "", 1)
	} else if strings.HasPrefix(strings.TrimSpace(text), "<@") {
		if end := strings.Index(text, ">"); end >= 0 {
			text = text[end+1:]
		}
	}
	return strings.TrimSpace(text)
}
