package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fortumars-mart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adviceFixture() ([]models.ChatMessage, []models.Product, []models.CartLine) {
	history := []models.ChatMessage{
		{Role: "user", Content: "What laptop should I buy?"},
	}
	products := []models.Product{
		{ID: "e4", Name: "Fortumas Book Air M3", Description: "Laptop", Price: 1299.00, Rating: 4.9},
	}
	cart := []models.CartLine{
		{Product: models.Product{ID: "e3", Name: "Noise Cancelling Earbuds Gen 4", Price: 199.00}, Quantity: 1},
	}
	return history, products, cart
}

func TestAdviseBuildsGroundedRequest(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Role: "model", Parts: []geminiPart{{Text: "Go for the Book Air M3."}}}},
			},
		})
	}))
	defer server.Close()

	svc := NewGeminiService("test-key", server.URL)
	history, products, cart := adviceFixture()

	reply := svc.Advise(context.Background(), history, products, cart)

	assert.Equal(t, "Go for the Book Air M3.", reply)

	require.Len(t, captured.Contents, 1)
	assert.Equal(t, "user", captured.Contents[0].Role)

	require.NotNil(t, captured.SystemInstruction)
	instruction := captured.SystemInstruction.Parts[0].Text
	assert.Contains(t, instruction, "Fortumas Book Air M3")
	assert.Contains(t, instruction, "$1299.00")
	assert.Contains(t, instruction, "Noise Cancelling Earbuds Gen 4")
}

func TestAdviseMapsAssistantRoleToModel(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{{Text: "ok"}}}},
			},
		})
	}))
	defer server.Close()

	svc := NewGeminiService("test-key", server.URL)
	history := []models.ChatMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}

	svc.Advise(context.Background(), history, nil, nil)

	require.Len(t, captured.Contents, 2)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "model", captured.Contents[1].Role)
}

func TestAdviseDegradesToApologyOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewGeminiService("test-key", server.URL)
	history, products, cart := adviceFixture()

	reply := svc.Advise(context.Background(), history, products, cart)

	assert.Equal(t, apologyReply, reply)
}

func TestAdviseDegradesToApologyWithoutAPIKey(t *testing.T) {
	svc := NewGeminiService("", "")
	history, products, cart := adviceFixture()

	reply := svc.Advise(context.Background(), history, products, cart)

	assert.Equal(t, apologyReply, reply)
}

func TestAdviseEmptyCandidatesYieldsFixedReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	svc := NewGeminiService("test-key", server.URL)
	history, products, cart := adviceFixture()

	assert.Equal(t, emptyReply, svc.Advise(context.Background(), history, products, cart))
}

func TestGenerateImageReturnsDataURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{
					{InlineData: &inlineData{MimeType: "image/png", Data: "aGVsbG8="}},
				}}},
			},
		})
	}))
	defer server.Close()

	svc := NewGeminiService("test-key", server.URL)

	image, err := svc.GenerateImage(context.Background(), "walnut desk organizer")

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", image)
}

func TestGenerateImagePropagatesFailures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		svc := NewGeminiService("test-key", server.URL)
		_, err := svc.GenerateImage(context.Background(), "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("no image part", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []geminiCandidate{
					{Content: geminiContent{Parts: []geminiPart{{Text: "no image for you"}}}},
				},
			})
		}))
		defer server.Close()

		svc := NewGeminiService("test-key", server.URL)
		_, err := svc.GenerateImage(context.Background(), "anything")
		assert.ErrorIs(t, err, ErrNoImageData)
	})
}
