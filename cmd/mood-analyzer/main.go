package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/modobot/mood-engine/internal/config"
	"github.com/modobot/mood-engine/internal/core"
	"github.com/modobot/mood-engine/internal/factory"
	"github.com/modobot/mood-engine/internal/logging"
	"go.uber.org/zap"
)

var (
	// Provider flags
	provider    = flag.String("provider", "huggingface", "Emotion provider (huggingface, openai, gemini, bedrock, none)")
	timeout     = flag.String("timeout", "10s", "Provider request timeout")
	maxTextSize = flag.Int("max-text-size", 4096, "Maximum text size to send to the provider")

	// Hugging Face flags
	hfAPIKey = flag.String("hf-api-key", "", "API key for the Hugging Face inference API")
	hfModel  = flag.String("hf-model", "SamLowe/roberta-base-go_emotions", "Hugging Face model")

	// OpenAI flags
	openaiAPIKey    = flag.String("openai-api-key", "", "API key for OpenAI")
	openaiModelName = flag.String("openai-model", "gpt-4", "OpenAI model name")

	// Gemini flags
	geminiAPIKey    = flag.String("gemini-api-key", "", "API key for Google Gemini")
	geminiModelName = flag.String("gemini-model", "gemini-pro", "Gemini model name")

	// Bedrock flags
	bedrockRegion  = flag.String("bedrock-region", "us-east-1", "AWS region for Bedrock")
	bedrockModelID = flag.String("bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Input flags
	inputFile   = flag.String("file", "", "Input text file (use stdin if not specified)")
	recordFile  = flag.String("record", "", "Input record JSON file (title/description/items)")
	historyFile = flag.String("history", "", "Summarize a JSON array of mood history entries instead of classifying")
	jsonOutput  = flag.Bool("json", false, "Print the full result as JSON")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog     = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile  = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	// Load .env if present so API keys can come from the environment
	_ = godotenv.Load()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config

	// Load configuration from file if specified
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		cfg = createConfigFromFlags()
	}

	if *historyFile != "" {
		summarizeHistory(logger, *historyFile)
		return
	}

	// Initialize the classifier and service
	textProcessor := factory.NewTextProcessorFactory(logger).CreateTextProcessor()
	classifierFactory := factory.NewClassifierFactory(cfg, logger, textProcessor)
	classifier, err := classifierFactory.CreateClassifier()
	if err != nil {
		logger.Fatal("Failed to create emotion classifier", zap.Error(err))
	}

	heuristic := core.NewHeuristicClassifier(logger)
	service := core.NewMoodService(classifier, heuristic, nil, logger, cfg.GetInt("history.limit"))

	// Classify either a record or plain text
	var result *core.ClassificationResult
	startTime := time.Now()

	if *recordFile != "" {
		record := readRecord(logger, *recordFile)
		fmt.Printf("\n=== Record Summary ===\n")
		fmt.Printf("Title: %s\n", record.Title)
		fmt.Printf("Items: %d\n", len(record.Items))
		result = service.ClassifyRecord(context.Background(), record)
	} else {
		text := readText(logger)
		fmt.Printf("\n=== Text Summary ===\n")
		fmt.Printf("Length: %d bytes\n", len(text))
		result = service.Classify(context.Background(), text)
	}
	duration := time.Since(startTime)

	if *jsonOutput {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Fatal("Failed to encode result", zap.Error(err))
		}
		fmt.Println(string(encoded))
		return
	}

	// Print results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Emotion: %s\n", result.Emotion)
	fmt.Printf("Confidence: %.4f\n", result.Confidence)
	fmt.Printf("Intensity: %s\n", result.Details.Intensity)
	fmt.Printf("Secondary: %s\n", joinEmotions(result.Details.Secondary))
	fmt.Printf("Keywords: %s\n", strings.Join(result.Details.Keywords, ", "))
	fmt.Printf("Source: %s\n", result.Source)
	fmt.Printf("Processing time: %v\n", duration)

	// Close any resources that need closing
	if closer, ok := classifier.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close classifier", zap.Error(err))
		}
	}
}

// readText reads the input text from the configured file or stdin
func readText(logger *zap.Logger) string {
	var reader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		reader = file
		logger.Info("Reading text from file", zap.String("file", *inputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading text from stdin")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		logger.Fatal("Failed to read input text", zap.Error(err))
	}
	return string(data)
}

// readRecord reads a composite record from a JSON file
func readRecord(logger *zap.Logger, path string) *core.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("Failed to read record file", zap.Error(err), zap.String("file", path))
	}

	var record core.Record
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Fatal("Failed to parse record file", zap.Error(err), zap.String("file", path))
	}
	return &record
}

// summarizeHistory aggregates a JSON array of mood history entries
func summarizeHistory(logger *zap.Logger, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("Failed to read history file", zap.Error(err), zap.String("file", path))
	}

	var entries []core.MoodHistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Fatal("Failed to parse history file", zap.Error(err), zap.String("file", path))
	}

	stats := core.Summarize(entries)

	encoded, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode summary", zap.Error(err))
	}
	fmt.Println(string(encoded))
}

func joinEmotions(emotions []core.EmotionLabel) string {
	if len(emotions) == 0 {
		return "(none)"
	}
	parts := make([]string, len(emotions))
	for i, emotion := range emotions {
		parts[i] = string(emotion)
	}
	return strings.Join(parts, ", ")
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	// Set emotion provider
	v.Set("provider.type", *provider)

	// Set provider-specific configuration
	switch *provider {
	case "huggingface":
		apiKey := *hfAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("HUGGING_FACE_API_KEY")
		}
		v.Set("huggingface.api_key", apiKey)
		v.Set("huggingface.model", *hfModel)
		v.Set("huggingface.timeout", *timeout)
		v.Set("huggingface.max_text_size", *maxTextSize)
	case "openai":
		v.Set("openai.api_key", *openaiAPIKey)
		v.Set("openai.model_name", *openaiModelName)
		v.Set("openai.timeout", *timeout)
		v.Set("openai.max_text_size", *maxTextSize)
	case "gemini":
		v.Set("gemini.api_key", *geminiAPIKey)
		v.Set("gemini.model_name", *geminiModelName)
		v.Set("gemini.timeout", *timeout)
		v.Set("gemini.max_text_size", *maxTextSize)
	case "bedrock":
		v.Set("bedrock.region", *bedrockRegion)
		v.Set("bedrock.model_id", *bedrockModelID)
		v.Set("bedrock.timeout", *timeout)
		v.Set("bedrock.max_text_size", *maxTextSize)
	}

	// The one-shot analyzer keeps no history
	v.Set("history.enabled", false)

	return config.NewFromViper(v)
}
