// Package extraction calls the generative AI collaborator that turns
// receipt images into structured invoice fields.
//
// The model output is treated as opaque best-effort JSON: it is cleaned of
// markdown fences, checked to be a JSON object and returned verbatim. All
// interpretation of the fields happens in the ledger normalizer, which
// tolerates the absence of every field.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used for receipt parsing.
const DefaultModelName = "gemini-2.0-flash"

// ErrExtraction is returned when the model call fails or returns
// something that is not JSON.
var ErrExtraction = errors.New("the receipt could not be processed")

// prompt instructs the model to return the invoice fields as a bare JSON
// object. The field names are the ones the ledger normalizer reads.
const prompt = `You are an expert invoice parser.

Task: From the invoice image provided, extract the key fields:
- Either Invoice Number or Bill Number: Integer (Output field: InvoiceNumber)
- Items (grouped in a list with ItemName (string), Price (decimal), Quantity (integer), and Total (decimal)) (Output field: Items)
- Invoice Date: Date (Output field: InvoiceDate)
- Total Amount: Decimal (Output field: TotalAmount)
- Vendor Name: String (Output field: VendorName)
- Payment Method: String (Output field: PaymentMethod)
- Invoice Type: String (Output field: InvoiceType)
- GST Amount: Decimal (Output field: GSTAmount)

Provide the output as a JSON object with the exact field names specified above. If a field is missing, ignore it and do not fill it in or make assumptions.

Restrictions:
Only provide the JSON object with the exact field names.
Do not provide any other text or explanations.
If you are unable to find any fields, provide an empty JSON object.
All rows of items must be grouped together.`

// Parser extracts structured invoice fields from a receipt image.
//
// Implementations must return a JSON object. Controllers receive the
// parser as a dependency so that tests never perform network calls.
type Parser interface {
	Parse(ctx context.Context, image []byte, mimeType string) (json.RawMessage, error)
}

// Gemini is a Parser backed by the Gemini API. The API key is read from
// the GEMINI_API_KEY environment variable by the genai client.
type Gemini struct {
	Model string
}

// NewGemini returns a Gemini parser using the default model.
func NewGemini() *Gemini {
	return &Gemini{Model: DefaultModelName}
}

// Parse sends the image to the model and returns the extracted fields.
func (g *Gemini) Parse(ctx context.Context, image []byte, mimeType string) (json.RawMessage, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     image,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("%w: the model returned an empty response", ErrExtraction)
	}

	clean := cleanJSON(raw)

	// The normalizer tolerates any set of fields, but the response must at
	// least be a JSON object.
	var object map[string]any
	if err := json.Unmarshal([]byte(clean), &object); err != nil {
		return nil, fmt.Errorf("%w: the model did not return valid JSON", ErrExtraction)
	}

	return json.RawMessage(clean), nil
}

// cleanJSON strips markdown code fences from a model response. Models
// regularly wrap output in ```json fences even when instructed not to.
func cleanJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove a trailing fence if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
