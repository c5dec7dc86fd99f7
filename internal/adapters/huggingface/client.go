package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/utils"
	"go.uber.org/zap"
)

// DefaultBaseURL is the Hugging Face inference API endpoint.
const DefaultBaseURL = "https://api-inference.huggingface.co/models"

// DefaultModel is the text-emotion model used when none is configured.
const DefaultModel = "SamLowe/roberta-base-go_emotions"

// Client is an implementation of the EmotionClassifier interface using the
// Hugging Face inference API.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	model         string
	apiKey        string
	maxTextSize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewClient creates a new Hugging Face client. An empty apiKey is a valid
// state: every classification attempt then fails with ErrProviderUnavailable
// without touching the network.
func NewClient(
	apiKey string,
	baseURL string,
	model string,
	timeout time.Duration,
	maxTextSize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       strings.TrimRight(baseURL, "/"),
		model:         model,
		apiKey:        apiKey,
		maxTextSize:   maxTextSize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// inferenceRequest is the inference API request payload.
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// ClassifyText classifies text into a ranked list of raw emotion labels.
func (c *Client) ClassifyText(ctx context.Context, text string) (*core.ProviderResult, error) {
	if c.apiKey == "" {
		return nil, core.ErrProviderUnavailable
	}

	processed := c.textProcessor.ProcessText(text, c.maxTextSize)

	body, err := json.Marshal(inferenceRequest{Inputs: processed})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", core.ErrProviderError, err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", core.ErrProviderError, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", core.ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", core.ErrProviderError, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", core.ErrProviderError, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Inference API returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("model", c.model),
			zap.ByteString("body", payload))
		return nil, fmt.Errorf("%w: unexpected status %d", core.ErrProviderError, resp.StatusCode)
	}

	emotions, err := parseEmotions(payload)
	if err != nil {
		c.logger.Error("Failed to parse inference payload",
			zap.Error(err),
			zap.String("model", c.model))
		return nil, fmt.Errorf("%w: %v", core.ErrProviderError, err)
	}

	// Sort defensively even though the API returns ranked results.
	sort.SliceStable(emotions, func(i, j int) bool {
		return emotions[i].Score > emotions[j].Score
	})

	return &core.ProviderResult{
		Emotions: emotions,
		Raw:      json.RawMessage(payload),
		Model:    c.model,
	}, nil
}

// parseEmotions decodes the inference response. Classification models wrap
// the label list in an outer array; some return it flat.
func parseEmotions(payload []byte) ([]core.RawEmotion, error) {
	var nested [][]core.RawEmotion
	if err := json.Unmarshal(payload, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	var flat []core.RawEmotion
	if err := json.Unmarshal(payload, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, errors.New("malformed inference payload")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
