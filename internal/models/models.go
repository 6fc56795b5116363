package models

import (
	"time"

	"github.com/studiolanding/promptgen/internal/generation"
)

// PromptSession represents one prompt-generation run, kept in memory
// only for the history panel of the current server process.
type PromptSession struct {
	ID          string               `json:"id"`
	State       string               `json:"state"`
	BrandInfo   generation.BrandInfo `json:"brand_info,omitempty"`
	RawCopy     string               `json:"raw_copy,omitempty"`
	Sections    string               `json:"sections,omitempty"`
	FinalPrompt string               `json:"final_prompt,omitempty"`
	Error       string               `json:"error,omitempty"`

	BrandImages int       `json:"brand_images"`
	CopyImages  int       `json:"copy_images"`
	Provider    string    `json:"provider,omitempty"`
	Model       string    `json:"model,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
