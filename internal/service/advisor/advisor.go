package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/logger"
)

// Service produces human-readable premium optimization suggestions. The
// suggestions are purely additive narrative: they never alter the numeric
// rating result, and any model failure degrades to a deterministic
// fallback list.
type Service struct {
	client *openai.Client
	model  string
}

// NewService builds the advisor. With an empty API key the service always
// answers with the fallback suggestions.
func NewService(apiKey, model string) *Service {
	svc := &Service{model: model}
	if svc.model == "" {
		svc.model = openai.GPT4TurboPreview
	}
	if apiKey != "" {
		svc.client = openai.NewClient(apiKey)
	}

	return svc
}

func (s *Service) AnalyzeOptimizations(
	ctx context.Context,
	data *domain.BusinessInfo,
	result *domain.RatingResult,
) *domain.PremiumOptimization {
	if s.client == nil {
		return fallbackOptimization()
	}

	prompt, err := buildPrompt(data, result)
	if err != nil {
		logger.Errorf(ctx, "buildPrompt: %s", err.Error())
		return fallbackOptimization()
	}

	var content string
	err = backoff.Retry(
		func() error {
			resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model:       s.model,
				Temperature: 0.3,
				ResponseFormat: &openai.ChatCompletionResponseFormat{
					Type: openai.ChatCompletionResponseFormatTypeJSONObject,
				},
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleUser, Content: prompt},
				},
			})
			if err != nil {
				return err
			}
			if len(resp.Choices) == 0 {
				return fmt.Errorf("no choices in completion")
			}

			content = resp.Choices[0].Message.Content
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 2), ctx),
	)
	if err != nil {
		logger.Errorf(ctx, "premium optimization completion: %s", err.Error())
		return fallbackOptimization()
	}

	var optimization domain.PremiumOptimization
	if err := sonic.UnmarshalString(content, &optimization); err != nil {
		logger.Errorf(ctx, "unmarshal optimization: %s", err.Error())
		return fallbackOptimization()
	}

	optimization.Timestamp = time.Now().UTC()
	return &optimization
}

func buildPrompt(data *domain.BusinessInfo, result *domain.RatingResult) (string, error) {
	breakdowns, err := sonic.MarshalString(result.Breakdowns)
	if err != nil {
		return "", err
	}
	programs, err := sonic.MarshalString(data.SafetyPrograms)
	if err != nil {
		return "", err
	}
	losses, err := sonic.MarshalString(data.LossHistory)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze workers compensation premium optimization opportunities:\n")
	fmt.Fprintf(&b, "Current Premium: %.2f\n", result.TotalPremium)
	fmt.Fprintf(&b, "Premium Breakdowns: %s\n", breakdowns)
	fmt.Fprintf(&b, "Safety Programs: %s\n", programs)
	fmt.Fprintf(&b, "Loss History: %s\n\n", losses)
	b.WriteString(`Identify opportunities for premium reduction through safety program
improvements, risk control enhancements, experience modification
optimization, schedule credit qualification and classification review.

Respond with JSON of the shape:
{
  "suggestions": [
    {
      "type": "credit|modification|program",
      "description": "string",
      "potentialSavings": number,
      "implementation": "string",
      "timeframe": "immediate|short-term|long-term",
      "confidence": number
    }
  ],
  "totalPotentialSavings": number,
  "prioritizedActions": ["string"]
}`)

	return b.String(), nil
}

func fallbackOptimization() *domain.PremiumOptimization {
	return &domain.PremiumOptimization{
		Suggestions: []domain.OptimizationSuggestion{
			{
				Type:           "program",
				Description:    "Document and activate formal safety programs; each active program earns schedule credit",
				Implementation: "Review existing safety practices and register them as formal programs",
				Timeframe:      "short-term",
				Confidence:     0.9,
			},
			{
				Type:           "credit",
				Description:    "Increase annual safety training hours above 20 to qualify for a training credit",
				Implementation: "Schedule recurring safety training sessions",
				Timeframe:      "short-term",
				Confidence:     0.85,
			},
			{
				Type:           "modification",
				Description:    "Close open claims promptly; open claims weigh on the risk profile",
				Implementation: "Work with the carrier on claim resolution",
				Timeframe:      "long-term",
				Confidence:     0.7,
			},
		},
		PrioritizedActions: []string{
			"Register active safety programs",
			"Expand safety training",
			"Resolve open claims",
		},
		Timestamp: time.Now().UTC(),
	}
}
