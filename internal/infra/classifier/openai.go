// Package classifier implements the DocumentClassifier contract against an
// OpenAI-compatible chat-completions API.
package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"yatai/config"
	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultModel    = "gpt-4o-mini"
	defaultTimeout  = 60 * time.Second

	serviceName = "document classifier"
)

// OpenAIClassifier sends document content to a chat-completions endpoint
// and normalizes the model's answer into a ValidityJudgment.
type OpenAIClassifier struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIClassifier creates a classifier from configuration. The endpoint
// can point at any OpenAI-compatible API, including a local stub in tests.
func NewOpenAIClassifier(cfg *config.Config) service.DocumentClassifier {
	endpoint := defaultEndpoint
	model := defaultModel
	timeout := defaultTimeout
	var apiKey string
	if cfg.Classifier != nil {
		apiKey = cfg.Classifier.APIKey
		if cfg.Classifier.Endpoint != "" {
			endpoint = cfg.Classifier.Endpoint
		}
		if cfg.Classifier.Model != "" {
			model = cfg.Classifier.Model
		}
		if cfg.Classifier.Timeout > 0 {
			timeout = cfg.Classifier.Timeout
		}
	}

	return &OpenAIClassifier{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// judgmentPayload is the JSON shape the prompt asks the model to answer in.
type judgmentPayload struct {
	ExtractedText string `json:"extracted_text"`
	Validity      struct {
		IsValid        bool     `json:"is_valid"`
		ExpirationDate string   `json:"expiration_date"`
		Issues         []string `json:"issues"`
	} `json:"validity"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// Classify judges the given document content. Image content is attached as
// an inline data URL; any other MIME type is passed as text. A document the
// model finds invalid is a successful classification, not an error.
func (c *OpenAIClassifier) Classify(ctx context.Context, content []byte, mimeType string, docType entity.DocumentType) (*entity.ValidityJudgment, error) {
	reqBody, err := json.Marshal(c.buildRequest(content, mimeType, docType))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode classifier request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create classifier request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewServiceUnavailableError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, domainerrors.NewServiceUnavailableError(serviceName,
			errors.Errorf("classifier answered status %d: %s", resp.StatusCode, string(body)))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, domainerrors.NewServiceUnavailableError(serviceName,
			errors.Wrap(err, "failed to decode completion"))
	}
	if len(completion.Choices) == 0 {
		return nil, domainerrors.NewServiceUnavailableError(serviceName,
			errors.New("completion contains no choices"))
	}

	return parseJudgment(completion.Choices[0].Message.Content)
}

func (c *OpenAIClassifier) buildRequest(content []byte, mimeType string, docType entity.DocumentType) map[string]any {
	prompt := buildPrompt(docType)

	var userContent any
	if strings.HasPrefix(mimeType, "image/") {
		dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(content))
		userContent = []map[string]any{
			{"type": "text", "text": prompt},
			{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
		}
	} else {
		userContent = prompt + "\n\nDocument content:\n" + string(content)
	}

	return map[string]any{
		"model": c.model,
		"messages": []map[string]any{
			{"role": "user", "content": userContent},
		},
		"max_tokens":  1000,
		"temperature": 0.1,
	}
}

// parseJudgment turns the model's JSON answer into a domain judgment. Models
// occasionally wrap JSON in a markdown fence despite being told not to, so
// the fence is stripped before decoding.
func parseJudgment(content string) (*entity.ValidityJudgment, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var payload judgmentPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, domainerrors.NewServiceUnavailableError(serviceName,
			errors.Wrap(err, "failed to parse judgment payload"))
	}

	judgment := &entity.ValidityJudgment{
		ExtractedText:   payload.ExtractedText,
		IsValid:         payload.Validity.IsValid,
		Issues:          payload.Validity.Issues,
		ConfidenceScore: clampScore(payload.ConfidenceScore),
	}

	if payload.Validity.ExpirationDate != "" {
		if expiration, err := time.Parse("2006-01-02", payload.Validity.ExpirationDate); err == nil {
			judgment.ExpirationDate = &expiration
		}
	}

	return judgment, nil
}

func clampScore(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

func buildPrompt(docType entity.DocumentType) string {
	base := `You are an assistant that reviews Japanese business documents.
Read the given document, extract its text and judge its validity.

Answer with JSON only, no markdown, in exactly this shape:
{
  "extracted_text": "the text you read from the document",
  "validity": {
    "is_valid": true or false,
    "expiration_date": "YYYY-MM-DD, only when the document carries one",
    "issues": ["list of problems, only when there are any"]
  },
  "confidence_score": 0.0 to 1.0
}

`

	switch docType {
	case entity.DocumentTypeBusinessLicense:
		return base + `This document should be a business license. Check that:
- it is a valid business/operating license
- it has not expired
- the license number, issue date and issuing authority are present
- the document format looks authentic
`
	case entity.DocumentTypeTaxCertificate:
		return base + `This document should be a tax payment certificate. Check that:
- it is a valid tax payment certificate
- the covered tax period is recent
- the taxpayer name and the issuing tax office are present
- the document format looks authentic
`
	case entity.DocumentTypeInsuranceCertificate:
		return base + `This document should be a liability insurance certificate. Check that:
- it is a valid insurance certificate
- the coverage period has not ended
- the policy number, insurer and insured party are present
- the document format looks authentic
`
	case entity.DocumentTypeProductPhotos:
		return base + `This image should show products offered for sale. Check that:
- the image actually shows products
- the image is clear enough to recognize what is sold
`
	default:
		return base + "Judge whether this is a legible, authentic-looking document.\n"
	}
}
