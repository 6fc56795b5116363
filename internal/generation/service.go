package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/studiolanding/promptgen/internal/gemini"
	"github.com/studiolanding/promptgen/internal/images"
	"github.com/studiolanding/promptgen/internal/openrouter"
	"github.com/studiolanding/promptgen/internal/providers"
)

// DefaultVisionModel is the vision-capable model requested through
// OpenRouter unless PROMPTGEN_MODEL overrides it.
const DefaultVisionModel = "anthropic/claude-sonnet-4"

// Per-call output token budgets.
const (
	brandMaxTokens    = 1000
	copyMaxTokens     = 4000
	sectionsMaxTokens = 4000
)

// Missing-input errors, reported before any network call is made.
var (
	ErrNoBrandboardImages = errors.New("at least one brandboard image is required")
	ErrNoCopyImages       = errors.New("at least one copy image is required")
)

// Result carries every artifact of one pipeline run.
type Result struct {
	State       State
	BrandInfo   BrandInfo
	RawCopy     string
	Sections    string
	FinalPrompt string
}

// Service runs the prompt-generation pipeline. The provider behind it
// is constructed on first use and reused for the life of the process.
type Service struct {
	model        string
	providerName string
	newProvider  func() (providers.Provider, error)

	providerOnce sync.Once
	provider     providers.Provider
	providerErr  error
}

// NewService builds a service from the environment: provider from
// PROMPTGEN_PROVIDER (openrouter by default, gemini supported), model
// from PROMPTGEN_MODEL.
func NewService() *Service {
	providerName := os.Getenv("PROMPTGEN_PROVIDER")
	if providerName == "" {
		providerName = "openrouter"
	}

	model := os.Getenv("PROMPTGEN_MODEL")
	if model == "" {
		model = defaultModelFor(providerName)
	}

	s := &Service{
		model:        model,
		providerName: providerName,
	}
	s.newProvider = func() (providers.Provider, error) {
		switch providerName {
		case "openrouter":
			client, err := openrouter.Default()
			if err != nil {
				return nil, err
			}
			return client, nil
		case "gemini":
			return gemini.New(), nil
		default:
			return nil, fmt.Errorf("unsupported provider: %s", providerName)
		}
	}
	return s
}

// NewServiceWithProvider builds a service around an already constructed
// provider (used by tests and the CLI when a client is handed in).
func NewServiceWithProvider(p providers.Provider, model string) *Service {
	s := &Service{
		model:        model,
		providerName: "custom",
	}
	s.newProvider = func() (providers.Provider, error) {
		return p, nil
	}
	return s
}

func defaultModelFor(providerName string) string {
	switch providerName {
	case "gemini":
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			return "gemini-1.5-flash"
		}
		return model
	default:
		return DefaultVisionModel
	}
}

// Model returns the model identifier the service sends with each call.
func (s *Service) Model() string {
	return s.model
}

// ProviderName returns the configured provider name.
func (s *Service) ProviderName() string {
	return s.providerName
}

func (s *Service) getProvider() (providers.Provider, error) {
	s.providerOnce.Do(func() {
		s.provider, s.providerErr = s.newProvider()
	})
	return s.provider, s.providerErr
}

// ExtractBrandInfo sends the brandboard images to the model and decodes
// the JSON it answers with. A malformed response degrades to the
// sentinel-filled fallback record rather than an error.
func (s *Service) ExtractBrandInfo(ctx context.Context, imgs []images.Encoded) (BrandInfo, error) {
	if len(imgs) == 0 {
		return nil, ErrNoBrandboardImages
	}

	provider, err := s.getProvider()
	if err != nil {
		return nil, err
	}

	raw, err := provider.ExtractText(ctx, providers.Config{
		Model:     s.model,
		MaxTokens: brandMaxTokens,
		Prompt:    buildBrandPrompt(),
		Images:    imgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze brandboard: %w", err)
	}

	info := DecodeBrandResponse(strings.TrimSpace(raw))
	slog.Info("Extracted brand info", "keys", len(info))
	return info, nil
}

// TranscribeCopy sends the copy screenshots to the model and returns
// the trimmed transcription as-is.
func (s *Service) TranscribeCopy(ctx context.Context, imgs []images.Encoded) (string, error) {
	if len(imgs) == 0 {
		return "", ErrNoCopyImages
	}

	provider, err := s.getProvider()
	if err != nil {
		return "", err
	}

	raw, err := provider.ExtractText(ctx, providers.Config{
		Model:     s.model,
		MaxTokens: copyMaxTokens,
		Prompt:    buildTranscriptionPrompt(),
		Images:    imgs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe copy: %w", err)
	}

	text := strings.TrimSpace(raw)
	slog.Info("Transcribed copy", "length", len(text))
	return text, nil
}

// StructureSections asks the model to re-flow the transcribed copy
// into the seven-section template. No local check verifies the section
// markers; correctness rests on the model's compliance.
func (s *Service) StructureSections(ctx context.Context, rawCopy string) (string, error) {
	provider, err := s.getProvider()
	if err != nil {
		return "", err
	}

	raw, err := provider.ExtractText(ctx, providers.Config{
		Model:     s.model,
		MaxTokens: sectionsMaxTokens,
		Prompt:    buildSectionsPrompt(rawCopy),
	})
	if err != nil {
		return "", fmt.Errorf("failed to structure sections: %w", err)
	}

	text := strings.TrimSpace(raw)
	slog.Info("Structured sections", "length", len(text))
	return text, nil
}

// Run drives the whole pipeline: brand extraction, transcription,
// structuring, assembly. Strictly sequential; the first failure aborts
// the remaining steps and the Result reports the state reached.
func (s *Service) Run(ctx context.Context, brandImgs, copyImgs []images.Encoded) (*Result, error) {
	result := &Result{State: StateIdle}

	// Both input groups are checked before any network call.
	if len(brandImgs) == 0 {
		result.State = StateFailed
		return result, ErrNoBrandboardImages
	}
	if len(copyImgs) == 0 {
		result.State = StateFailed
		return result, ErrNoCopyImages
	}

	slog.Info("Starting prompt generation", "provider", s.providerName, "model", s.model,
		"brandboard_images", len(brandImgs), "copy_images", len(copyImgs))

	brand, err := s.ExtractBrandInfo(ctx, brandImgs)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.BrandInfo = brand
	result.State = StateBrandExtracted

	rawCopy, err := s.TranscribeCopy(ctx, copyImgs)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.RawCopy = rawCopy
	result.State = StateCopyTranscribed

	sections, err := s.StructureSections(ctx, rawCopy)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.Sections = sections
	result.State = StateSectionsStructured

	result.FinalPrompt = AssemblePrompt(brand, sections)
	result.State = StatePromptAssembled

	slog.Info("Prompt generated", "length", len(result.FinalPrompt))
	return result, nil
}
