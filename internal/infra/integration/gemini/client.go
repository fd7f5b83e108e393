package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-3-flash-preview"

var (
	ErrAuth              = errors.New("gemini: credencial ausente ou recusada")
	ErrNetwork           = errors.New("gemini: falha de comunicação")
	ErrMalformedResponse = errors.New("gemini: resposta sem texto")
)

// Client gera texto com a API do Gemini. Sem API key ele continua utilizável,
// mas toda chamada falha com ErrAuth.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(apiKey) == "" {
		return &Client{model: model}, nil
	}

	return newClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newClient(ctx context.Context, cfg *genai.ClientConfig, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return &Client{genai: client, model: model}, nil
}

// Configured informa se há credencial para chamar a API.
func (c *Client) Configured() bool {
	return c.genai != nil
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.genai == nil {
		return "", ErrAuth
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrMalformedResponse
	}
	return resp.Text(), nil
}

func classify(err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}

	// chave inválida volta como 400 INVALID_ARGUMENT
	if code == 401 || code == 403 || (code == 400 && strings.Contains(err.Error(), "API key")) {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
