// Package foreman talks to the generative backend that plays the site
// foreman: short Icelandic commentary, trash recognition, image edits and
// place lookups. Every call degrades to a fixed Icelandic fallback, so a
// dead network never reaches the games.
package foreman

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Model names per concern. Flash handles the quick in-game calls, pro the
// open questions, the image model edits photos.
const (
	modelFlash = "gemini-3-flash-preview"
	modelPro   = "gemini-3-pro-preview"
	modelImage = "gemini-2.5-flash-image"
	modelMaps  = "gemini-2.5-flash"
)

const defaultTimeout = 10 * time.Second

// Event marks where in a round a commentary request comes from.
type Event string

const (
	EventStart     Event = "start"
	EventEnd       Event = "end"
	EventMilestone Event = "milestone"
)

// Commentary is one foreman remark.
type Commentary struct {
	Message string `json:"message"`
	Mood    string `json:"mood"` // happy, neutral or excited
}

// Classification is the foreman's verdict on a photographed item.
type Classification struct {
	Item   string `json:"item"`
	Bin    string `json:"bin"`
	Reason string `json:"reason"`
}

// Places is a grounded lookup answer with its source links.
type Places struct {
	Text  string
	Links []string
}

// Fallbacks used when the backend is unreachable or misbehaves.
var (
	fallbackCommentary = Commentary{Message: "Áfram gakk!", Mood: "happy"}
	fallbackClassify   = Classification{Item: "Óþekkt", Bin: "Almennt", Reason: "Gat ekki greint mynd."}
	fallbackAnswer     = "Gat ekki svarað akkúrat núna."
)

// Client is the foreman backend client. A zero API key disables all
// calls; every method then returns its fallback immediately.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different backend, used in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a foreman client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  log.NewWithOptions(io.Discard, log.Options{Prefix: "foreman"}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogger routes client warnings to the given logger.
func (c *Client) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

// Enabled reports whether the client has an API key to work with.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Wire types for the generateContent endpoint.

type genRequest struct {
	SystemInstruction *genContent `json:"systemInstruction,omitempty"`
	Contents          []genContent `json:"contents"`
	GenerationConfig  *genConfig   `json:"generationConfig,omitempty"`
	Tools             []genTool    `json:"tools,omitempty"`
}

type genContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []genPart `json:"parts"`
}

type genPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type genTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
	GoogleMaps   *struct{} `json:"googleMaps,omitempty"`
}

type genResponse struct {
	Candidates []struct {
		Content           genContent `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web  *struct{ URI string `json:"uri"` } `json:"web"`
				Maps *struct{ URI string `json:"uri"` } `json:"maps"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// generate performs one generateContent call against the given model.
func (c *Client) generate(ctx context.Context, model string, req genRequest) (*genResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("foreman: cannot encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("foreman: cannot build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("foreman: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("foreman: backend returned %d: %s", resp.StatusCode, data)
	}

	var out genResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("foreman: cannot decode response: %w", err)
	}
	return &out, nil
}

// text returns the first text part of the first candidate.
func (r *genResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	for _, p := range r.Candidates[0].Content.Parts {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// image returns the first inline image payload of the first candidate.
func (r *genResponse) image() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	for _, p := range r.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return p.InlineData.Data
		}
	}
	return ""
}

// seasonContext gives the foreman a sense of time and weather.
func seasonContext(now time.Time) string {
	greeting := "Það er bjartur dagur."
	if h := now.Hour(); h < 7 || h >= 20 {
		greeting = "Það er komið kvöld á vinnusvæðinu."
	}
	season := "Það er sumar og góð vinnuveður."
	if m := now.Month(); m >= time.October || m <= time.April {
		season = "Það er vetur og kalt úti. Minntu á hálkuvarnir."
	}
	return greeting + " " + season
}

// Commentary asks for a short remark about a round event. Never returns
// an error; failures come back as the standard fallback.
func (c *Client) Commentary(ctx context.Context, gameID string, score int, event Event) Commentary {
	if !c.Enabled() {
		return fallbackCommentary
	}

	var prompt string
	switch event {
	case EventStart:
		prompt = fmt.Sprintf("Nýr leikur: %s. Kveðja.", gameID)
	case EventEnd:
		prompt = fmt.Sprintf("Leik lokið: %s, stig: %d. Stutt umsögn.", gameID, score)
	default:
		prompt = fmt.Sprintf("Góður árangur í %s! Hrósaðu.", gameID)
	}

	system := "Þú ert verkstjóri hjá 'Litlu Gamaleigunni'. " +
		"Talaðu stutt og hressilega á íslensku. Hvettu spilarann áfram. " +
		"Samhengi: " + seasonContext(time.Now())

	resp, err := c.generate(ctx, modelFlash, genRequest{
		SystemInstruction: &genContent{Parts: []genPart{{Text: system}}},
		Contents:          []genContent{{Parts: []genPart{{Text: prompt}}}},
		GenerationConfig:  &genConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		c.logger.Warn("commentary failed", "err", err)
		return fallbackCommentary
	}

	var out Commentary
	if err := json.Unmarshal([]byte(resp.text()), &out); err != nil || out.Message == "" {
		return fallbackCommentary
	}
	return out
}

// ClassifyTrash identifies a photographed item and names its bin.
// Never returns an error; failures fall back to the general bin.
func (c *Client) ClassifyTrash(ctx context.Context, base64Image string) Classification {
	if !c.Enabled() {
		return fallbackClassify
	}

	resp, err := c.generate(ctx, modelFlash, genRequest{
		Contents: []genContent{{Parts: []genPart{
			{InlineData: &inlineData{MimeType: "image/jpeg", Data: base64Image}},
			{Text: "Greindu þennan hlut. Hvað er þetta og í hvaða tunnu fer það " +
				"(Plast, Pappi, Matur eða Almennt)? Svaraðu á íslensku JSON."},
		}}},
		GenerationConfig: &genConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		c.logger.Warn("classify failed", "err", err)
		return fallbackClassify
	}

	var out Classification
	if err := json.Unmarshal([]byte(resp.text()), &out); err != nil || out.Bin == "" {
		return fallbackClassify
	}
	return out
}

// EditImage applies a prompt to a photo and returns the edited image as
// base64, or an error when the backend produced nothing usable.
func (c *Client) EditImage(ctx context.Context, base64Image, prompt string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("foreman: no API key configured")
	}

	resp, err := c.generate(ctx, modelImage, genRequest{
		Contents: []genContent{{Parts: []genPart{
			{InlineData: &inlineData{MimeType: "image/jpeg", Data: base64Image}},
			{Text: fmt.Sprintf("Edit this image: %s. Keep the face recognizable but apply the style strongly.", prompt)},
		}}},
	})
	if err != nil {
		return "", err
	}

	img := resp.image()
	if img == "" {
		return "", fmt.Errorf("foreman: backend returned no image")
	}
	return img, nil
}

// FindPlaces runs a maps-grounded lookup for locations in Iceland.
func (c *Client) FindPlaces(ctx context.Context, query string) Places {
	if !c.Enabled() {
		return Places{Text: fallbackAnswer}
	}

	resp, err := c.generate(ctx, modelMaps, genRequest{
		Contents: []genContent{{Parts: []genPart{
			{Text: "Find locations in Iceland: " + query},
		}}},
		Tools: []genTool{{GoogleMaps: &struct{}{}}},
	})
	if err != nil {
		c.logger.Warn("place lookup failed", "err", err)
		return Places{Text: fallbackAnswer}
	}

	out := Places{Text: resp.text()}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Maps != nil && chunk.Maps.URI != "" {
				out.Links = append(out.Links, chunk.Maps.URI)
			}
			if chunk.Web != nil && chunk.Web.URI != "" {
				out.Links = append(out.Links, chunk.Web.URI)
			}
		}
	}
	return out
}

// Ask sends an open question to the foreman.
func (c *Client) Ask(ctx context.Context, question string) string {
	if !c.Enabled() {
		return fallbackAnswer
	}

	prompt := "Þú ert verkstjóri á vinnusvæði. Svaraðu þessari spurningu " +
		"stuttlega og hressilega á íslensku: " + question

	resp, err := c.generate(ctx, modelPro, genRequest{
		Contents: []genContent{{Parts: []genPart{{Text: prompt}}}},
	})
	if err != nil {
		c.logger.Warn("ask failed", "err", err)
		return fallbackAnswer
	}

	if text := resp.text(); text != "" {
		return text
	}
	return fallbackAnswer
}
