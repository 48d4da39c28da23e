package avatar

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pagardi95/ironunicorn/internal/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const maxErrorBody = 512

// Client talks to a generateContent style text-to-image endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	aspectRatio string
	httpClient  *http.Client
}

type NewClientParams struct {
	BaseURL     string
	APIKey      string
	Model       string
	AspectRatio string
	// HTTPClient defaults to a traced client with a 90s timeout.
	HTTPClient *http.Client
}

func NewClient(params NewClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   90 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	aspectRatio := params.AspectRatio
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}
	return &Client{
		baseURL:     strings.TrimRight(params.BaseURL, "/"),
		apiKey:      params.APIKey,
		model:       params.Model,
		aspectRatio: aspectRatio,
		httpClient:  httpClient,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string    `json:"responseModalities"`
	ImageConfig        imageConfig `json:"imageConfig"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Generate sends one request, no retries. Failures are *GenerationError.
func (c *Client) Generate(ctx context.Context, prompt string) (_ Image, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "avatar.client.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("model", c.model))

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        imageConfig{AspectRatio: c.aspectRatio},
		},
	})
	if err != nil {
		return Image{}, &GenerationError{Class: ClassInvalidRequest, Err: fmt.Errorf("marshal request: %w", err)}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Image{}, &GenerationError{Class: ClassInvalidRequest, Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Image{}, &GenerationError{Class: ClassTransient, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, &GenerationError{Class: ClassTransient, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return Image{}, &GenerationError{
			Class:      classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(raw))),
		}
	}

	return parseImage(raw, resp.StatusCode)
}

// parseImage scans the response for the first inline image part.
func parseImage(raw []byte, statusCode int) (Image, error) {
	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Image{}, &GenerationError{Class: ClassNoImage, StatusCode: statusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if reason := resp.PromptFeedback.BlockReason; reason != "" {
		return Image{}, &GenerationError{Class: ClassSafetyBlocked, StatusCode: statusCode, Err: fmt.Errorf("prompt blocked: %s", reason)}
	}

	blocked := ""
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return Image{}, &GenerationError{Class: ClassNoImage, StatusCode: statusCode, Err: fmt.Errorf("decode image data: %w", err)}
			}
			return Image{MIMEType: p.InlineData.MIMEType, Data: data}, nil
		}
		switch cand.FinishReason {
		case "SAFETY", "IMAGE_SAFETY", "PROHIBITED_CONTENT":
			blocked = cand.FinishReason
		}
	}

	if blocked != "" {
		return Image{}, &GenerationError{Class: ClassSafetyBlocked, StatusCode: statusCode, Err: fmt.Errorf("candidate blocked: %s", blocked)}
	}
	return Image{}, &GenerationError{Class: ClassNoImage, StatusCode: statusCode, Err: ErrNoImage}
}
