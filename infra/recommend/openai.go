package recommend

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"firedispatch/core/logger"
	"firedispatch/core/model"
)

const defaultTimeout = 10 * time.Second

const systemPrompt = "You dispatch fire-response units. Reply with exactly one word, " +
	"one of: ground-vehicle, aerial, foot."

// OpenAIRecommender asks a chat completion model which agent kind suits a
// fire severity. The advisor matches the reply against the agent-kind
// vocabulary and falls back on any error.
type OpenAIRecommender struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     logger.Logger
}

// New creates a recommender. An empty model defaults to GPT-4o mini.
func New(apiKey, chatModel string, log logger.Logger) (*OpenAIRecommender, error) {
	if apiKey == "" {
		return nil, errors.New("recommend: API key is required")
	}
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &OpenAIRecommender{
		client:  openai.NewClient(apiKey),
		model:   chatModel,
		timeout: defaultTimeout,
		log:     log,
	}, nil
}

// Recommend implements advisor.RecommendationService.
func (r *OpenAIRecommender) Recommend(ctx context.Context, severity model.Severity) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: r.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: "Best unit kind for a fire of severity " + string(severity) + ".",
				},
			},
			MaxTokens:   8,
			Temperature: 0,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("recommend: empty completion")
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	r.log.Debugf("recommendation for %s: %q", severity, reply)
	return reply, nil
}
