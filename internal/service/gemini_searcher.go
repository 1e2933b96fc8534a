package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	"google.golang.org/genai"
)

const (
	geminiAPIVersion = "v1beta"
	unknownLocation  = "Unknown Location"
	missingURI       = "#"
)

var errGeminiNotConfigured = errors.New("gemini api key is not configured")

// GeminiSearcher grounds a Gemini prompt on Google Maps around the caller's position.
type GeminiSearcher struct {
	Model  string
	client *genai.Client
}

// NewGeminiSearcher builds a client for the Gemini API. An empty apiKey yields a searcher
// whose every call fails; baseURL overrides the SDK's endpoint when non-empty.
func NewGeminiSearcher(ctx context.Context, apiKey, model, baseURL string) (*GeminiSearcher, error) {
	g := &GeminiSearcher{Model: model}
	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    baseURL,
			APIVersion: geminiAPIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *GeminiSearcher) Search(ctx context.Context, at db.Location, query string) (*entities.SearchResult, error) {
	if g.client == nil {
		return nil, errGeminiNotConfigured
	}

	prompt := fmt.Sprintf("Find available parking spots based on this user query: \"%s\"", query)
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(at.Latitude),
					Longitude: genai.Ptr(at.Longitude),
				},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	return toSearchResult(resp), nil
}

func toSearchResult(resp *genai.GenerateContentResponse) *entities.SearchResult {
	result := &entities.SearchResult{Locations: []entities.SearchLocation{}}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return result
	}

	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		var summary strings.Builder
		for _, p := range candidate.Content.Parts {
			if p != nil {
				summary.WriteString(p.Text)
			}
		}
		result.Summary = summary.String()
	}

	if candidate.GroundingMetadata == nil {
		return result
	}
	for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Maps == nil {
			continue
		}
		loc := entities.SearchLocation{Title: chunk.Maps.Title, URI: chunk.Maps.URI}
		if loc.Title == "" {
			loc.Title = unknownLocation
		}
		if loc.URI == "" {
			loc.URI = missingURI
		}
		result.Locations = append(result.Locations, loc)
	}
	return result
}
