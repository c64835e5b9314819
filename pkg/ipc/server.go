package ipc

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordfreq/internal/metrics"
	"github.com/bastiangx/wordfreq/pkg/analyzer"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for word frequency requests.
type Server struct {
	analyzer analyzer.WordFrequencyAnalyzer
	metrics  *metrics.Metrics
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
}

// NewServer creates an IPC server reading requests from r and writing
// responses to w. m may be nil.
func NewServer(a analyzer.WordFrequencyAnalyzer, r io.Reader, w io.Writer, m *metrics.Metrics) *Server {
	return &Server{
		analyzer: a,
		metrics:  m,
		dec:      msgpack.NewDecoder(r),
		enc:      msgpack.NewEncoder(w),
	}
}

// Start announces readiness and serves requests until the input ends.
// A clean end of input returns nil.
func (s *Server) Start() error {
	log.Debug("Starting IPC server.")

	if err := s.send(Response{Status: StatusReady}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("IPC input closed")
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decode request: %w", err)
		}

		if err := s.send(s.handleRequest(req)); err != nil {
			return err
		}
	}
}

func (s *Server) send(resp Response) error {
	if err := s.enc.Encode(resp); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

// handleRequest dispatches on the op and never fails: errors become error responses.
func (s *Server) handleRequest(req Request) Response {
	start := time.Now()

	resp, err := s.dispatch(req)
	if err != nil {
		resp = s.errorResponse(req, err)
	} else {
		resp.Status = StatusOK
	}
	resp.ID = req.ID

	elapsed := time.Since(start)
	resp.TimeTaken = elapsed.Microseconds()

	code := resp.Code
	if code == 0 {
		code = 200
	}
	op := req.Op
	if !knownOp(op) {
		op = "unknown"
	}
	s.metrics.ObserveRequest("ipc", op, strconv.Itoa(code), elapsed)
	return resp
}

func (s *Server) dispatch(req Request) (Response, error) {
	if req.Text != nil {
		s.metrics.ObserveText(len(*req.Text))
	}

	switch req.Op {
	case OpHealth:
		return Response{}, nil
	case OpHighest:
		freq, err := s.analyzer.HighestFrequency(req.Text)
		return Response{Frequency: freq}, err
	case OpWord:
		freq, err := s.analyzer.FrequencyForWord(req.Text, req.Word)
		return Response{Word: strings.ToLower(req.Word), Frequency: freq}, err
	case OpTop:
		top, err := s.analyzer.MostFrequentNWords(req.Text, req.N)
		if err != nil {
			return Response{}, err
		}
		words := make([]WordFrequency, len(top))
		for i, wf := range top {
			words[i] = WordFrequency{Word: wf.Word(), Frequency: wf.Frequency()}
		}
		return Response{Words: words}, nil
	default:
		return Response{}, &unknownOpError{op: req.Op}
	}
}

func knownOp(op string) bool {
	switch op {
	case OpHighest, OpWord, OpTop, OpHealth:
		return true
	}
	return false
}

type unknownOpError struct {
	op string
}

func (e *unknownOpError) Error() string {
	return fmt.Sprintf("Unknown op: %q", e.op)
}

func (s *Server) errorResponse(req Request, err error) Response {
	code, kind := 500, "internal"
	var analysisErr *analyzer.AnalysisError
	var opErr *unknownOpError
	switch {
	case errors.As(err, &analysisErr):
		code, kind = 400, "invalid_input"
		if errors.Is(err, analyzer.ErrInvalidWord) {
			kind = "invalid_word"
		}
	case errors.As(err, &opErr):
		code, kind = 400, "unknown_op"
	}

	ref := uuid.NewString()
	log.Error("IPC request failed", "id", req.ID, "op", req.Op, "reference", ref, "err", err)
	s.metrics.ObserveError("ipc", kind)

	return Response{
		Status:    StatusError,
		Error:     err.Error(),
		Reference: ref,
		Code:      code,
	}
}
