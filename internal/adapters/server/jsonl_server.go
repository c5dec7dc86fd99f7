package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/modobot/mood-engine/internal/core"
	"go.uber.org/zap"
)

// readTimeout bounds how long a connection may sit idle between requests.
const readTimeout = 30 * time.Second

// maxLineBytes bounds a single request line.
const maxLineBytes = 1 << 20

// JSONLServer serves classification requests as newline-delimited JSON over
// TCP. Each request line is {"id":..., "text":...} or {"id":..., "record":...};
// each response line carries the id and the classification result.
type JSONLServer struct {
	service    *core.MoodService
	logger     *zap.Logger
	listenAddr string

	mu       sync.Mutex
	listener net.Listener
	closed   bool
	wg       sync.WaitGroup
}

// request is a single classification request line
type request struct {
	ID     string       `json:"id"`
	Text   string       `json:"text,omitempty"`
	Record *core.Record `json:"record,omitempty"`
}

// response is a single classification response line
type response struct {
	ID     string                     `json:"id"`
	Result *core.ClassificationResult `json:"result,omitempty"`
	Error  string                     `json:"error,omitempty"`
}

// NewJSONLServer creates a new JSONL analysis server
func NewJSONLServer(service *core.MoodService, logger *zap.Logger, listenAddr string) *JSONLServer {
	return &JSONLServer{
		service:    service,
		logger:     logger,
		listenAddr: listenAddr,
	}
}

// Classify classifies a single text directly, bypassing the transport
func (s *JSONLServer) Classify(ctx context.Context, text string) *core.ClassificationResult {
	return s.service.Classify(ctx, text)
}

// Start starts the analysis server
func (s *JSONLServer) Start() error {
	listener, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.logger.Info("Analysis server starting", zap.String("address", s.listenAddr))

	s.wg.Add(1)
	go s.acceptLoop(listener)

	return nil
}

// Stop stops the analysis server
func (s *JSONLServer) Stop() error {
	s.mu.Lock()
	s.closed = true
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		if err := listener.Close(); err != nil {
			return err
		}
	}
	s.wg.Wait()
	return nil
}

func (s *JSONLServer) acceptLoop(listener net.Listener) {
	defer s.wg.Done()

	for {
		conn, err := listener.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed || errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Error("Failed to accept connection", zap.Error(err))
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(conn)
		}()
	}
}

func (s *JSONLServer) handleConn(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	encoder := json.NewEncoder(conn)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			return
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
				s.logger.Debug("Connection closed", zap.Error(err))
			}
			return
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if encErr := encoder.Encode(response{Error: "malformed request: " + err.Error()}); encErr != nil {
				return
			}
			continue
		}

		var result *core.ClassificationResult
		if req.Record != nil {
			result = s.service.ClassifyRecord(context.Background(), req.Record)
		} else {
			result = s.service.Classify(context.Background(), req.Text)
		}

		if err := encoder.Encode(response{ID: req.ID, Result: result}); err != nil {
			s.logger.Debug("Failed to write response", zap.Error(err))
			return
		}
	}
}
