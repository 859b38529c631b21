// Package speech turns verse text into cached audio files and checks
// recited verses against the expected text.
package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	ttsRequestTimeout = 10 * time.Second
	// the endpoint rejects longer queries
	maxChunkLength = 180
	defaultTTSURL  = "https://translate.google.com/translate_tts"
)

// TTSService converts text to MP3 files stored in audioDir
type TTSService struct {
	audioDir string
	baseURL  string
	language string
	client   *http.Client
}

// Option configures a TTSService
type Option func(*TTSService)

// WithBaseURL points the service at a different TTS endpoint
func WithBaseURL(u string) Option {
	return func(s *TTSService) { s.baseURL = u }
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *TTSService) { s.client = c }
}

// NewTTSService creates a new TTS service
func NewTTSService(audioDir string, opts ...Option) *TTSService {
	s := &TTSService{
		audioDir: audioDir,
		baseURL:  defaultTTSURL,
		language: "en",
		client:   &http.Client{Timeout: ttsRequestTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FileName returns the cache file name for text
func FileName(text string) string {
	sum := sha256.Sum256([]byte(normalizeSpace(text)))
	return "verse_" + hex.EncodeToString(sum[:8]) + ".mp3"
}

// Speak returns the name of an MP3 file reading text aloud, generating it
// on first use
func (s *TTSService) Speak(ctx context.Context, text string) (string, error) {
	text = normalizeSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text to speak")
	}

	filename := FileName(text)
	path := filepath.Join(s.audioDir, filename)
	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	// write to a temp file so a failed download never leaves a partial cache hit
	tmp, err := os.CreateTemp(s.audioDir, "tts-*.part")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	for _, chunk := range chunkText(text, maxChunkLength) {
		if err := s.fetch(ctx, chunk, tmp); err != nil {
			tmp.Close()
			return "", fmt.Errorf("failed to generate audio: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to store audio file: %w", err)
	}
	return filename, nil
}

// Path returns the absolute location of a cached file, rejecting names that
// escape the audio directory
func (s *TTSService) Path(filename string) (string, error) {
	if filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".mp3") {
		return "", fmt.Errorf("invalid audio file name %q", filename)
	}
	return filepath.Join(s.audioDir, filename), nil
}

// fetch appends the audio for one chunk to w. MP3 frames concatenate cleanly.
func (s *TTSService) fetch(ctx context.Context, text string, w io.Writer) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", s.language)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}
	return nil
}

// chunkText splits text on word boundaries into pieces of at most limit bytes.
// A single word longer than limit becomes its own chunk.
func chunkText(text string, limit int) []string {
	var chunks []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+1+len(word) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
