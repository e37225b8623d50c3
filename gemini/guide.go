// Package gemini implements campusguide.Guide using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/campusguide"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is given.
const DefaultModel = "gemini-2.5-flash"

// Ensure Guide implements campusguide.Guide at compile time.
var _ campusguide.Guide = (*Guide)(nil)

// Guide answers campus questions with Gemini, grounded on the catalog.
type Guide struct {
	client  *genai.Client
	catalog *campusguide.Catalog
	model   string
}

// NewGuide creates a new Guide. An empty model selects DefaultModel.
func NewGuide(client *genai.Client, catalog *campusguide.Catalog, model string) *Guide {
	if model == "" {
		model = DefaultModel
	}
	return &Guide{client: client, catalog: catalog, model: model}
}

// Ask answers a natural language question about the campus.
func (g *Guide) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", campusguide.Errorf(campusguide.EINVALID, "question required")
	}

	locations := g.catalog.Locations()
	if len(locations) == 0 {
		return "", campusguide.Errorf(campusguide.ENOTFOUND, "no locations in catalog")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(locations, question)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", campusguide.Errorf(campusguide.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a friendly campus tour guide. Answer questions about campus locations using only the locations provided. Mention the location name, its timing, and relevant facilities. If the answer is not in the provided locations, say so and suggest asking about one of them.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the catalog and question.
func BuildUserPrompt(locations []*campusguide.Location, question string) string {
	var sb strings.Builder
	sb.WriteString("<locations>\n")
	for _, loc := range locations {
		sb.WriteString("<location>\n")
		fmt.Fprintf(&sb, "<name>%s</name>\n", loc.Name)
		fmt.Fprintf(&sb, "<aliases>%s</aliases>\n", strings.Join(loc.Keywords, campusguide.ListSeparator))
		fmt.Fprintf(&sb, "<description>%s</description>\n", loc.Description)
		fmt.Fprintf(&sb, "<facilities>%s</facilities>\n", strings.Join(loc.Facilities, campusguide.ListSeparator))
		fmt.Fprintf(&sb, "<timing>%s</timing>\n", loc.Timing)
		if loc.Coordinates != "" {
			fmt.Fprintf(&sb, "<coordinates>%s</coordinates>\n", loc.Coordinates)
		}
		sb.WriteString("</location>\n")
	}
	sb.WriteString("</locations>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
