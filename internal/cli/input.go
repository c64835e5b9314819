// Package cli handles cmd line input for analyzing text interactively.
package cli

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordfreq/pkg/analyzer"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// InputHandler reads lines of text and prints their word frequencies.
// Each non-empty line is analyzed on its own.
type InputHandler struct {
	analyzer     analyzer.WordFrequencyAnalyzer
	limit        int
	word         string
	requestCount int

	in        io.Reader
	out       *log.Logger
	wordStyle lipgloss.Style
	freqStyle lipgloss.Style
}

// NewInputHandler creates an InputHandler printing up to limit words per line.
// When word is set, its frequency is printed as well.
func NewInputHandler(a analyzer.WordFrequencyAnalyzer, limit int, word string, in io.Reader, out io.Writer) *InputHandler {
	renderer := lipgloss.NewRenderer(out)
	return &InputHandler{
		analyzer: a,
		limit:    limit,
		word:     word,
		in:       in,
		out: log.NewWithOptions(out, log.Options{
			ReportTimestamp: false,
		}),
		wordStyle: renderer.NewStyle().Foreground(lipgloss.Color("75")),
		freqStyle: renderer.NewStyle().Bold(true),
	}
}

// Start begins the interface loop.
// It reads lines until the input ends, which is not an error.
func (h *InputHandler) Start() error {
	h.out.Print("WordFreq CLI")
	h.out.Print("paste or type some text and press Enter (Ctrl+D to exit):")

	scanner := bufio.NewScanner(h.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
	return scanner.Err()
}

// handleInput analyzes a single line and prints the results.
func (h *InputHandler) handleInput(text string) {
	h.requestCount++
	start := time.Now()

	highest, err := h.analyzer.HighestFrequency(&text)
	if err != nil {
		log.Errorf("Analysis failed: %v", err)
		return
	}
	top, err := h.analyzer.MostFrequentNWords(&text, h.limit)
	if err != nil {
		log.Errorf("Analysis failed: %v", err)
		return
	}

	log.Debugf("Took [ %v ] for request #%d (%s)", time.Since(start), h.requestCount, humanize.Bytes(uint64(len(text))))

	if highest == 0 {
		h.out.Warn("No words found in input")
		return
	}

	h.out.Printf("Highest frequency: %s", h.freqStyle.Render(humanize.Comma(int64(highest))))

	if h.word != "" {
		freq, err := h.analyzer.FrequencyForWord(&text, h.word)
		if err != nil {
			h.out.Error(err.Error())
		} else {
			h.out.Printf("Frequency of '%s': %s", strings.ToLower(h.word), h.freqStyle.Render(humanize.Comma(int64(freq))))
		}
	}

	h.out.Printf("Top %d words:", len(top))
	for i, wf := range top {
		h.out.Printf("%2d. %-30s (freq: %8s)", i+1, h.wordStyle.Render(wf.Word()), humanize.Comma(int64(wf.Frequency())))
	}
}
