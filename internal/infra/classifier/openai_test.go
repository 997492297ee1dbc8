package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yatai/config"
	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClassifierWith(t *testing.T, handler http.HandlerFunc) *OpenAIClassifier {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Classifier: &config.ClassifierConfig{
			Endpoint: server.URL + "/v1/chat/completions",
			APIKey:   "test-key",
			Model:    "gpt-4o-mini",
		},
	}

	return NewOpenAIClassifier(cfg).(*OpenAIClassifier)
}

func completionWith(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestOpenAIClassifier_Classify_ValidDocument(t *testing.T) {
	answer := `{
  "extracted_text": "Business license no. 12345, issued 2025-04-01",
  "validity": {"is_valid": true, "expiration_date": "2027-03-31"},
  "confidence_score": 0.92
}`
	classifier := newClassifierWith(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])

		_ = json.NewEncoder(w).Encode(completionWith(answer))
	})

	judgment, err := classifier.Classify(context.Background(), []byte("%PDF-1.7"), "application/pdf", entity.DocumentTypeBusinessLicense)
	require.NoError(t, err)
	assert.True(t, judgment.IsValid)
	assert.Equal(t, "Business license no. 12345, issued 2025-04-01", judgment.ExtractedText)
	assert.InDelta(t, 0.92, judgment.ConfidenceScore, 0.001)
	require.NotNil(t, judgment.ExpirationDate)
	assert.Equal(t, time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC), *judgment.ExpirationDate)
}

func TestOpenAIClassifier_Classify_InvalidDocumentIsNotAnError(t *testing.T) {
	answer := `{
  "extracted_text": "handwritten note",
  "validity": {"is_valid": false, "issues": ["not a tax certificate", "no issuing office"]},
  "confidence_score": 0.4
}`
	classifier := newClassifierWith(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(completionWith(answer))
	})

	judgment, err := classifier.Classify(context.Background(), []byte("scribbles"), "application/pdf", entity.DocumentTypeTaxCertificate)
	require.NoError(t, err)
	assert.False(t, judgment.IsValid)
	assert.Len(t, judgment.Issues, 2)
	assert.Nil(t, judgment.ExpirationDate)
}

func TestOpenAIClassifier_Classify_ImageGoesAsDataURL(t *testing.T) {
	answer := `{"extracted_text": "", "validity": {"is_valid": true}, "confidence_score": 0.8}`
	classifier := newClassifierWith(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Content []struct {
					Type     string `json:"type"`
					ImageURL struct {
						URL string `json:"url"`
					} `json:"image_url"`
				} `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		require.Len(t, req.Messages[0].Content, 2)
		assert.Equal(t, "image_url", req.Messages[0].Content[1].Type)
		assert.Contains(t, req.Messages[0].Content[1].ImageURL.URL, "data:image/png;base64,")

		_ = json.NewEncoder(w).Encode(completionWith(answer))
	})

	_, err := classifier.Classify(context.Background(), []byte{0x89, 0x50}, "image/png", entity.DocumentTypeProductPhotos)
	require.NoError(t, err)
}

func TestOpenAIClassifier_Classify_StripsMarkdownFence(t *testing.T) {
	answer := "```json\n{\"extracted_text\": \"x\", \"validity\": {\"is_valid\": true}, \"confidence_score\": 1.4}\n```"
	classifier := newClassifierWith(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(completionWith(answer))
	})

	judgment, err := classifier.Classify(context.Background(), []byte("text"), "text/plain", entity.DocumentTypeBusinessLicense)
	require.NoError(t, err)
	assert.True(t, judgment.IsValid)
	// Scores outside [0, 1] are clamped.
	assert.Equal(t, 1.0, judgment.ConfidenceScore)
}

func TestOpenAIClassifier_Classify_UnparsableAnswer(t *testing.T) {
	classifier := newClassifierWith(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(completionWith("I could not read the document, sorry."))
	})

	judgment, err := classifier.Classify(context.Background(), []byte("text"), "text/plain", entity.DocumentTypeBusinessLicense)
	require.Error(t, err)
	assert.Nil(t, judgment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SERVICE_UNAVAILABLE", appErr.ErrorCode())
}

func TestOpenAIClassifier_Classify_UpstreamError(t *testing.T) {
	classifier := newClassifierWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	judgment, err := classifier.Classify(context.Background(), []byte("text"), "text/plain", entity.DocumentTypeBusinessLicense)
	require.Error(t, err)
	assert.Nil(t, judgment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
}
