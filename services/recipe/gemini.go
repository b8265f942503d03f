// File: sushichat/services/recipe/gemini.go
package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	defaultTimeout  = 25 * time.Second
	maxOutputTokens = 512
	temperature     = 0.7
)

// GeminiService looks recipes up through the Gemini generation API. The
// API key arrives per call because it may be the caller's own credential
// rather than the configured one.
type GeminiService struct {
	Timeout time.Duration
	Cache   *RedisRecipeCache // optional; nil disables caching
	Logger  *zap.Logger
}

func (s *GeminiService) Lookup(ctx context.Context, dishName, apiKey string) string {
	if s.Cache != nil {
		if text, err := s.Cache.Get(ctx, dishName); err == nil && text != "" {
			return text
		}
	}

	text, err := s.generate(ctx, dishName, apiKey)
	if err != nil {
		s.Logger.Warn("recipe lookup failed",
			zap.String("dish", dishName), zap.Error(err))
		return fmt.Sprintf("Erro na resposta da API Gemini: %v", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, dishName, text); err != nil {
			s.Logger.Warn("recipe cache write failed",
				zap.String("dish", dishName), zap.Error(err))
		}
	}
	return text
}

func (s *GeminiService) generate(ctx context.Context, dishName, apiKey string) (string, error) {
	if apiKey == "" {
		return "", errors.New("nenhuma chave da API fornecida")
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxOutputTokens)

	prompt := fmt.Sprintf("Quais são os ingredientes do prato %s? Responda de forma objetiva.", dishName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("resposta vazia do modelo")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("resposta sem conteúdo de texto")
	}
	return sb.String(), nil
}
