package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/shubh-37/website-section-generator/internal/models"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const maxSlackBody = 1 << 20

// Generator runs the generate flow for one idea
type Generator interface {
	Generate(ctx context.Context, idea string) (*models.GenerateResult, error)
}

// CommandHandler serves the /sections slash command
type CommandHandler struct {
	generator     Generator
	signingSecret string
	logger        *zap.Logger
}

func NewCommandHandler(generator Generator, signingSecret string, logger *zap.Logger) *CommandHandler {
	return &CommandHandler{
		generator:     generator,
		signingSecret: signingSecret,
		logger:        logger,
	}
}

func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sv, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.logger.Warn("rejected slash command", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	r.Body = io.NopCloser(io.TeeReader(http.MaxBytesReader(w, r.Body, maxSlackBody), &sv))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		h.logger.Warn("failed to parse slash command", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := sv.Ensure(); err != nil {
		h.logger.Warn("slash command signature mismatch", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idea := strings.TrimSpace(cmd.Text)
	if idea == "" {
		writeSlackMessage(w, &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: usageText})
		return
	}

	h.logger.Info("slash command received",
		zap.String("command", cmd.Command),
		zap.String("user", cmd.UserID),
		zap.String("channel", cmd.ChannelID),
	)

	result, err := h.generator.Generate(r.Context(), idea)
	if err != nil {
		h.logger.Error("slash command generate failed", zap.Error(err))
		writeSlackMessage(w, &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "Failed to generate sections"})
		return
	}

	writeSlackMessage(w, &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         resultText(result),
		Blocks:       slack.Blocks{BlockSet: resultBlocks(result)},
	})
}

func writeSlackMessage(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(msg)
}
