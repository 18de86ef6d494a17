package gemini

import (
	"context"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// Client wraps one Gemini model by name. The same client config is
// shared across tiers; only the model name differs.
type Client struct {
	client *genai.Client
	model  string
}

var _ interfaces.ModelClient = &Client{}

func New(client *genai.Client, modelName string) *Client {
	return &Client{
		client: client,
		model:  modelName,
	}
}

func NewGenAIClient(ctx context.Context, projectID, location string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client", goerr.V("project", projectID), goerr.V("location", location))
	}
	return client, nil
}

func (c *Client) GenerateContent(ctx context.Context, req *model.GenerateRequest) (string, error) {
	parts := []*genai.Part{
		{Text: req.Prompt},
	}
	if req.Media != nil {
		parts = append(parts, &genai.Part{
			FileData: &genai.FileData{
				FileURI:  req.Media.URI,
				MIMEType: req.Media.MIMEType,
			},
		})
	}

	config := &genai.GenerateContentConfig{}
	if req.Instruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.Instruction}},
		}
	}
	if req.JSONOutput {
		config.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		{Role: "user", Parts: parts},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content", goerr.V("model", c.model))
	}

	text := extractText(resp)
	if text == "" {
		return "", goerr.New("model returned empty response", goerr.V("model", c.model))
	}

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			text += part.Text
		}
	}
	return text
}
