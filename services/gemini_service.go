package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"fortumars-mart/models"
)

const (
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	adviceModel = "gemini-3-flash-preview"
	imageModel  = "gemini-2.5-flash-image"

	// apologyReply is the fixed degradation for any advisor failure; the
	// chat never surfaces an error.
	apologyReply = "I'm having trouble connecting right now. Please try again later."
	emptyReply   = "I'm sorry, I couldn't process that request."
)

var ErrNoImageData = errors.New("no image data found in response")

// GeminiService talks to the Gemini generateContent API for shopping advice
// and product image generation.
type GeminiService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiService(apiKey, baseURL string) *GeminiService {
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	return &GeminiService{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Advise answers a shopping question grounded in the current catalog and
// cart. Any failure, including a missing API key, degrades to a fixed
// apology string.
func (s *GeminiService) Advise(ctx context.Context, history []models.ChatMessage, products []models.Product, cart []models.CartLine) string {
	if s.apiKey == "" {
		log.Println("Gemini API key not configured")
		return apologyReply
	}

	contents := make([]geminiContent, 0, len(history))
	for _, msg := range history {
		role := "model"
		if msg.Role == "user" {
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	reqBody := geminiRequest{
		Contents: contents,
		SystemInstruction: &systemInstruction{
			Parts: []geminiPart{{Text: buildAdvisorInstruction(products, cart)}},
		},
		GenerationConfig: &generationConfig{Temperature: 0.7},
	}

	resp, err := s.generateContent(ctx, adviceModel, reqBody)
	if err != nil {
		log.Printf("Gemini advice request failed: %v", err)
		return apologyReply
	}

	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return emptyReply
}

// GenerateImage renders a product photo for the admin form. Unlike the
// advisor, failures propagate so the admin UI can display them verbatim.
// The result is a data URL carrying the mime type and base64 payload.
func (s *GeminiService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("gemini API key not configured")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{{Text: fmt.Sprintf(
					"Professional product photography of: %s. High resolution, clean studio lighting, 4k, realistic texture.",
					prompt)}},
			},
		},
		GenerationConfig: &generationConfig{ResponseModalities: []string{"IMAGE"}},
	}

	resp, err := s.generateContent(ctx, imageModel, reqBody)
	if err != nil {
		return "", err
	}

	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil {
				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data), nil
			}
		}
	}
	return "", ErrNoImageData
}

func (s *GeminiService) generateContent(ctx context.Context, model string, reqBody geminiRequest) (*geminiResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &parsed, nil
}

func buildAdvisorInstruction(products []models.Product, cart []models.CartLine) string {
	var sb strings.Builder
	sb.WriteString("You are FortumarsMart Assistant, a helpful shopping expert.\nAvailable products:\n")
	for _, p := range products {
		fmt.Fprintf(&sb, "- %s ($%.2f): %s (Rating: %.1f)\n", p.Name, p.Price, p.Description, p.Rating)
	}

	if len(cart) > 0 {
		names := make([]string, len(cart))
		for i, line := range cart {
			names[i] = line.Name
		}
		fmt.Fprintf(&sb, "\nThe user currently has these in their cart: %s.\n", strings.Join(names, ", "))
	} else {
		sb.WriteString("\nThe user's cart is currently empty.\n")
	}

	sb.WriteString(`
Guidelines:
1. Be concise and friendly.
2. Help users find products based on their needs.
3. Compare products if asked.
4. Suggest complementary items.
5. Do not make up prices or features not listed in the context.
6. Always format prices correctly.`)
	return sb.String()
}
