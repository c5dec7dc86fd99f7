package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/utils"
	"go.uber.org/zap"
)

// BedrockClient is an implementation of the EmotionClassifier interface using Amazon Bedrock
type BedrockClient struct {
	client        *bedrockruntime.Client
	modelID       string
	maxTokens     int
	temperature   float32
	topP          float32
	maxTextSize   int
	timeout       time.Duration
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
	promptFormat  string
}

// NewBedrockClient creates a new Bedrock client
func NewBedrockClient(
	client *bedrockruntime.Client,
	modelID string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxTextSize int,
	timeout time.Duration,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *BedrockClient {
	return &BedrockClient{
		client:        client,
		modelID:       modelID,
		maxTokens:     maxTokens,
		temperature:   temperature,
		topP:          topP,
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
	}
}

// isAnthropicModel checks if the model is an Anthropic Claude model
func (c *BedrockClient) isAnthropicModel() bool {
	return strings.HasPrefix(c.modelID, "anthropic.")
}

// isAmazonTitanModel checks if the model is an Amazon Titan model
func (c *BedrockClient) isAmazonTitanModel() bool {
	return strings.HasPrefix(c.modelID, "amazon.titan")
}

// ClassifyText classifies text into a ranked list of raw emotion labels
func (c *BedrockClient) ClassifyText(ctx context.Context, text string) (*core.ProviderResult, error) {
	processed := c.textProcessor.ProcessText(text, c.maxTextSize)
	prompt := fmt.Sprintf(c.promptFormat, processed)

	// Create the request based on the model
	var payload []byte
	var err error

	if c.isAnthropicModel() {
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":               fmt.Sprintf("\n\nHuman: %s\n\nAssistant:", prompt),
			"max_tokens_to_sample": c.maxTokens,
			"temperature":          c.temperature,
			"top_p":                c.topP,
		})
	} else if c.isAmazonTitanModel() {
		payload, err = json.Marshal(map[string]interface{}{
			"inputText": prompt,
			"textGenerationConfig": map[string]interface{}{
				"maxTokenCount": c.maxTokens,
				"temperature":   c.temperature,
				"topP":          c.topP,
			},
		})
	} else {
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":      prompt,
			"max_tokens":  c.maxTokens,
			"temperature": c.temperature,
			"top_p":       c.topP,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request payload: %v", core.ErrProviderError, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.modelID,
		Body:        payload,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", core.ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: failed to invoke Bedrock model: %v", core.ErrProviderError, err)
	}

	// Parse the response based on the model
	var responseText string

	if c.isAnthropicModel() {
		var claudeResp struct {
			Completion string `json:"completion"`
		}
		if err := json.Unmarshal(resp.Body, &claudeResp); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal Claude response: %v", core.ErrProviderError, err)
		}
		responseText = claudeResp.Completion
	} else if c.isAmazonTitanModel() {
		var titanResp struct {
			Results []struct {
				OutputText string `json:"outputText"`
			} `json:"results"`
		}
		if err := json.Unmarshal(resp.Body, &titanResp); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal Titan response: %v", core.ErrProviderError, err)
		}
		if len(titanResp.Results) == 0 {
			return nil, fmt.Errorf("%w: empty response from Titan model", core.ErrProviderError)
		}
		responseText = titanResp.Results[0].OutputText
	} else {
		var genericResp struct {
			Completion string `json:"completion"`
		}
		if err := json.Unmarshal(resp.Body, &genericResp); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal model response: %v", core.ErrProviderError, err)
		}
		responseText = genericResp.Completion
	}

	emotions, err := parseEmotionArray(responseText)
	if err != nil {
		c.logger.Error("Failed to parse Bedrock emotion response",
			zap.Error(err),
			zap.String("model_id", c.modelID))
		return nil, fmt.Errorf("%w: %v", core.ErrProviderError, err)
	}

	raw, err := json.Marshal(emotions)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal raw analysis: %v", core.ErrProviderError, err)
	}

	return &core.ProviderResult{
		Emotions: emotions,
		Raw:      raw,
		Model:    c.modelID,
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
