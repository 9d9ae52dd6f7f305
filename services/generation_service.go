// File: /services/generation_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"wanderspot-api/models"
)

const chatSystemPrompt = "You are a friendly and knowledgeable travel assistant. " +
	"Answer questions about destinations, food, transport, etiquette and trip planning. " +
	"Keep answers concise and practical."

// GenerationService backs both generation endpoints: conversational chat
// replies and structured itinerary plans.
type GenerationService struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewGenerationService(apiKey string, model string, maxTokens int, temperature float64, logger *zap.Logger) *GenerationService {
	return &GenerationService{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Reply produces an assistant reply for the ordered transcript
func (g *GenerationService) Reply(ctx context.Context, transcript []models.ChatTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(transcript)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: chatSystemPrompt,
	})
	for _, turn := range transcript {
		role := openai.ChatMessageRoleUser
		if turn.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       g.model,
			Messages:    messages,
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Failed to get chat completion", zap.Error(err))
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("generation failed: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateItinerary produces a structured day-by-day plan for a destination
func (g *GenerationService) GenerateItinerary(ctx context.Context, req models.ItineraryRequest) (*models.Itinerary, error) {
	interests := "general sightseeing"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	prompt := fmt.Sprintf(`Create a %d-day travel itinerary for %s focused on: %s.

Return the response as a JSON object with this structure:
{
    "days": [
        {
            "day": 1,
            "title": "day_title",
            "activities": [
                {"time": "09:00", "activity": "activity_name", "description": "short_description"}
            ]
        }
    ]
}

Return only the JSON object, no other text.`, req.Days, req.Destination, interests)

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Failed to generate itinerary", zap.Error(err))
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("generation failed: empty response")
	}

	itinerary, err := ParseItinerary(resp.Choices[0].Message.Content)
	if err != nil {
		g.logger.Error("Failed to parse itinerary response",
			zap.Error(err),
			zap.String("response", resp.Choices[0].Message.Content))
		return nil, err
	}

	return itinerary, nil
}

// ParseItinerary decodes a model response into an itinerary, tolerating
// a markdown code fence around the JSON body.
func ParseItinerary(response string) (*models.Itinerary, error) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	var itinerary models.Itinerary
	if err := json.Unmarshal([]byte(response), &itinerary); err != nil {
		return nil, fmt.Errorf("malformed itinerary response: %w", err)
	}
	if len(itinerary.Days) == 0 {
		return nil, errors.New("malformed itinerary response: no days")
	}

	return &itinerary, nil
}
