package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"falgoritma/internal/config"
	"falgoritma/pkg/utils"
)

// PersonAttributes describes who the fortune is about. Missing values arrive as
// the "Bilinmiyor" sentinel, never as empty strings or nils.
type PersonAttributes struct {
	Name               string
	BirthDate          string // YYYY-MM-DD or "Bilinmiyor"
	RelationshipStatus string
	Profession         string
	Gender             string // optional, guest fortunes only
}

type LLMClientInterface interface {
	GenerateInterpretation(ctx context.Context, photos []string, subject PersonAttributes) (string, error)
}

type openAIFortuneClient struct {
	client  *openai.Client
	prompt  *config.PromptTemplate
	timeout time.Duration
}

func NewOpenAIFortuneClient(apiKey string, prompt *config.PromptTemplate) LLMClientInterface {
	return &openAIFortuneClient{
		client:  openai.NewClient(apiKey),
		prompt:  prompt,
		timeout: 90 * time.Second,
	}
}

// GenerateInterpretation makes exactly one provider call. No retries, no side
// effects; credit handling belongs to the caller.
func (o *openAIFortuneClient) GenerateInterpretation(ctx context.Context, photos []string, subject PersonAttributes) (string, error) {

	parts := []openai.ChatMessagePart{
		{
			Type: openai.ChatMessagePartTypeText,
			Text: o.buildSubjectText(subject),
		},
	}

	for _, photo := range photos {
		imageData := photo
		if !strings.HasPrefix(photo, "data:") {
			imageData = "data:image/jpeg;base64," + photo
		}
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: imageData,
			},
		})
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	log.Printf("Generating fortune for: %s, photos: %d", subject.Name, len(photos))

	resp, err := o.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:     o.prompt.Model,
		MaxTokens: o.prompt.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: o.prompt.SystemRole,
			},
			{
				Role:         openai.ChatMessageRoleUser,
				MultiContent: parts,
			},
		},
	})

	if err != nil {
		return "", classifyProviderError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &utils.GenerationError{Kind: utils.GenerationEmptyResponse}
	}

	log.Printf("Fortune generated successfully for: %s", subject.Name)
	return resp.Choices[0].Message.Content, nil
}

func (o *openAIFortuneClient) buildSubjectText(subject PersonAttributes) string {
	var b strings.Builder

	b.WriteString(o.prompt.UserPreface)
	fmt.Fprintf(&b, "\n- İsim: %s", subject.Name)
	fmt.Fprintf(&b, "\n- Doğum Tarihi: %s", subject.BirthDate)
	if sign := utils.ZodiacSignFromDate(subject.BirthDate); sign != "" {
		fmt.Fprintf(&b, "\n- Burç: %s", sign)
	}
	if subject.Gender != "" {
		fmt.Fprintf(&b, "\n- Cinsiyet: %s", subject.Gender)
	}
	fmt.Fprintf(&b, "\n- İlişki Durumu: %s", subject.RelationshipStatus)
	fmt.Fprintf(&b, "\n- Meslek: %s", subject.Profession)
	b.WriteString("\n\n")
	b.WriteString(o.prompt.UserClosing)

	return b.String()
}

func classifyProviderError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &utils.GenerationError{Kind: utils.GenerationTimeout}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		log.Printf("provider API error: %v", apiErr)
		return &utils.GenerationError{Kind: utils.GenerationProviderError, Status: apiErr.HTTPStatusCode}
	}

	log.Printf("provider call failed: %v", err)
	return &utils.GenerationError{Kind: utils.GenerationProviderError}
}
