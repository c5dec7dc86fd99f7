package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/modobot/mood-engine/internal/core"
)

func startTestServer(t *testing.T) (*JSONLServer, net.Conn) {
	t.Helper()

	logger := zap.NewNop()
	service := core.NewMoodService(nil, core.NewHeuristicClassifier(logger), nil, logger, 0)
	srv := NewJSONLServer(service, logger, "127.0.0.1:0")

	require.NoError(t, srv.Start())
	t.Cleanup(func() { srv.Stop() })

	conn, err := net.DialTimeout("tcp", srv.listener.Addr().String(), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return srv, conn
}

func readResponse(t *testing.T, reader *bufio.Reader) response {
	t.Helper()

	line, err := reader.ReadBytes('\n')
	require.NoError(t, err)

	var resp response
	require.NoError(t, json.Unmarshal(line, &resp))
	return resp
}

func TestJSONLServerClassifiesText(t *testing.T) {
	_, conn := startTestServer(t)
	reader := bufio.NewReader(conn)

	_, err := conn.Write([]byte(`{"id":"req-1","text":"happy and excited about everything"}` + "\n"))
	require.NoError(t, err)

	resp := readResponse(t, reader)
	assert.Equal(t, "req-1", resp.ID)
	assert.Empty(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, core.EmotionHappy, resp.Result.Emotion)
	assert.Equal(t, core.SourceHeuristic, resp.Result.Source)
}

func TestJSONLServerClassifiesRecord(t *testing.T) {
	_, conn := startTestServer(t)
	reader := bufio.NewReader(conn)

	_, err := conn.Write([]byte(`{"id":"req-2","record":{"title":"Journal","items":[{"text":"lonely and broken"}]}}` + "\n"))
	require.NoError(t, err)

	resp := readResponse(t, reader)
	assert.Equal(t, "req-2", resp.ID)
	require.NotNil(t, resp.Result)
	assert.Equal(t, core.EmotionSad, resp.Result.Emotion)
}

func TestJSONLServerHandlesMultipleRequestsPerConnection(t *testing.T) {
	_, conn := startTestServer(t)
	reader := bufio.NewReader(conn)

	_, err := conn.Write([]byte(`{"id":"a","text":"furious and annoyed"}` + "\n" + `{"id":"b","text":""}` + "\n"))
	require.NoError(t, err)

	first := readResponse(t, reader)
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, core.EmotionAngry, first.Result.Emotion)

	second := readResponse(t, reader)
	assert.Equal(t, "b", second.ID)
	assert.Equal(t, core.EmotionNeutral, second.Result.Emotion)
	assert.Equal(t, core.SourceDefault, second.Result.Source)
}

func TestJSONLServerRejectsMalformedRequest(t *testing.T) {
	_, conn := startTestServer(t)
	reader := bufio.NewReader(conn)

	_, err := conn.Write([]byte("not json\n"))
	require.NoError(t, err)

	resp := readResponse(t, reader)
	assert.Nil(t, resp.Result)
	assert.Contains(t, resp.Error, "malformed request")

	// The connection survives a bad line.
	_, err = conn.Write([]byte(`{"id":"after","text":"terrified tonight"}` + "\n"))
	require.NoError(t, err)
	resp = readResponse(t, reader)
	assert.Equal(t, "after", resp.ID)
	assert.Equal(t, core.EmotionFear, resp.Result.Emotion)
}

func TestJSONLServerClassifyBypassesTransport(t *testing.T) {
	srv, _ := startTestServer(t)

	result := srv.Classify(context.Background(), "wow absolutely unbelievable")
	require.NotNil(t, result)
	assert.Equal(t, core.EmotionSurprise, result.Emotion)
}

func TestJSONLServerStopClosesListener(t *testing.T) {
	logger := zap.NewNop()
	service := core.NewMoodService(nil, core.NewHeuristicClassifier(logger), nil, logger, 0)
	srv := NewJSONLServer(service, logger, "127.0.0.1:0")

	require.NoError(t, srv.Start())
	addr := srv.listener.Addr().String()
	require.NoError(t, srv.Stop())

	_, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
	assert.Error(t, err)
}
