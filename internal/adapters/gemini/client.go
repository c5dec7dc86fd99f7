package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/utils"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiClient is an implementation of the EmotionClassifier interface using Google Gemini
type GeminiClient struct {
	client        *genai.Client
	model         *genai.GenerativeModel
	apiKey        string
	modelName     string
	maxTextSize   int
	timeout       time.Duration
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
	promptFormat  string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxTextSize int,
	timeout time.Duration,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &GeminiClient{
		client:        client,
		model:         model,
		apiKey:        apiKey,
		modelName:     modelName,
		maxTextSize:   maxTextSize,
		timeout:       timeout,
		logger:        logger,
		textProcessor: textProcessor,
		promptFormat: `You are an emotion classification system. Analyze the following text and rank the emotions it expresses.
Respond with a JSON array of objects, each containing:
- label: an emotion word such as joy, excitement, sadness, disappointment, anger, annoyance, fear, nervousness, disgust, surprise, curiosity or neutral
- score: number between 0 and 1 (how strongly the text expresses that emotion)

Order the array from strongest to weakest emotion and include at most five entries.

Text:
%s

Respond only with the JSON array and nothing else.`,
	}, nil
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// ClassifyText classifies text into a ranked list of raw emotion labels
func (c *GeminiClient) ClassifyText(ctx context.Context, text string) (*core.ProviderResult, error) {
	if c.apiKey == "" {
		return nil, core.ErrProviderUnavailable
	}

	processed := c.textProcessor.ProcessText(text, c.maxTextSize)
	prompt := fmt.Sprintf(c.promptFormat, processed)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", core.ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: content generation failed: %v", core.ErrProviderError, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty response from Gemini", core.ErrProviderError)
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	emotions, err := parseEmotionArray(responseText)
	if err != nil {
		c.logger.Error("Failed to parse Gemini emotion response",
			zap.Error(err),
			zap.String("model", c.modelName))
		return nil, fmt.Errorf("%w: %v", core.ErrProviderError, err)
	}

	raw, err := json.Marshal(emotions)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal raw analysis: %v", core.ErrProviderError, err)
	}

	return &core.ProviderResult{
		Emotions: emotions,
		Raw:      raw,
		Model:    c.modelName,
	}, nil
}

// parseEmotionArray parses the model's JSON response, tolerating surrounding
// prose by extracting the outermost JSON array
func parseEmotionArray(responseText string) ([]core.RawEmotion, error) {
	var emotions []core.RawEmotion
	if err := json.Unmarshal([]byte(responseText), &emotions); err == nil && len(emotions) > 0 {
		return emotions, nil
	}

	jsonStart := -1
	jsonEnd := -1
	for i := 0; i < len(responseText); i++ {
		if responseText[i] == '[' {
			jsonStart = i
			break
		}
	}
	for i := len(responseText) - 1; i >= 0; i-- {
		if responseText[i] == ']' {
			jsonEnd = i + 1
			break
		}
	}

	if jsonStart < 0 || jsonStart >= jsonEnd {
		return nil, errors.New("no JSON array in model response")
	}

	if err := json.Unmarshal([]byte(responseText[jsonStart:jsonEnd]), &emotions); err != nil {
		return nil, fmt.Errorf("failed to parse model response as JSON: %w", err)
	}
	if len(emotions) == 0 {
		return nil, errors.New("model response contained no emotions")
	}

	return emotions, nil
}
