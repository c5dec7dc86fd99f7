package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	assert.Equal(t, "huggingface", cfg.GetString("provider.type"))
	assert.Equal(t, "https://api-inference.huggingface.co/models", cfg.GetString("huggingface.base_url"))
	assert.Equal(t, "SamLowe/roberta-base-go_emotions", cfg.GetString("huggingface.model"))
	assert.Equal(t, 4096, cfg.GetInt("huggingface.max_text_size"))
	assert.Equal(t, "0.0.0.0:10080", cfg.GetString("server.listen_address"))
	assert.Equal(t, "memory", cfg.GetString("history.type"))
	assert.True(t, cfg.GetBool("history.enabled"))
	assert.Equal(t, 100, cfg.GetInt("history.limit"))
}

func TestGetDuration(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	timeout, err := cfg.GetDuration("huggingface.timeout")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, timeout)

	retention, err := cfg.GetDuration("history.retention")
	require.NoError(t, err)
	assert.Equal(t, 720*time.Hour, retention)
}

func TestGetDurationInvalid(t *testing.T) {
	v := NewEmptyViper()
	v.Set("huggingface.timeout", "not-a-duration")
	cfg := NewFromViper(v)

	_, err := cfg.GetDuration("huggingface.timeout")
	assert.Error(t, err)
}

func TestOverridesBeatDefaults(t *testing.T) {
	v := NewEmptyViper()
	v.Set("provider.type", "openai")
	v.Set("history.limit", 25)
	cfg := NewFromViper(v)

	assert.Equal(t, "openai", cfg.GetString("provider.type"))
	assert.Equal(t, 25, cfg.GetInt("history.limit"))
}

func TestGetProvider(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	provider := cfg.GetProvider()
	assert.Equal(t, "huggingface", provider.Type)

	hf := cfg.GetHuggingFace()
	assert.Equal(t, "SamLowe/roberta-base-go_emotions", hf.Model)
	assert.Empty(t, hf.APIKey)
}
