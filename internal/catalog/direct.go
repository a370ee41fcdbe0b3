// Package catalog holds the static direct-vendor catalog seeded into the registry.
package catalog

import (
	"time"

	"github.com/davidbz/shreegen/internal/domain"
)

// Seed credentials; entries stay ineligible until an operator sets a real key.
const (
	placeholderGoogle    = "AIzaSy..."
	placeholderAnthropic = "sk-ant-..."
	placeholderOpenAI    = "sk-..."
	placeholderXAI       = "xai-..."
)

// Vendor names used by the catalog; each has a registered direct adapter.
const (
	VendorGoogle    = "google"
	VendorAnthropic = "anthropic"
	VendorOpenAI    = "openai"
	VendorXAI       = "xai"
)

type seed struct {
	id          string
	label       string
	vendor      string
	model       string
	category    domain.Category
	credential  string
	status      string
	usage       string
	added       string
	description string
	enabled     bool
}

//nolint:gochecknoglobals // Static catalog
var seeds = []seed{
	{"gemini-2-flash", "Gemini 2.0 Flash", VendorGoogle, "gemini-2.0-flash", domain.CategoryFast, placeholderGoogle, "online", "1.2M tokens", "2024-01-15", "Next-gen multimodal speed.", true},
	{"gemini-1-5-pro", "Gemini 1.5 Pro", VendorGoogle, "gemini-1.5-pro", domain.CategoryThinking, placeholderGoogle, "online", "450K tokens", "2024-03-20", "Massive context reasoning.", true},
	{"gemini-1-5-pro-002", "Gemini 1.5 Pro-002", VendorGoogle, "gemini-1.5-pro-002", domain.CategoryThinking, placeholderGoogle, "online", "500K tokens", "2024-09-20", "Updated production pro model.", true},
	{"gemini-1-5-flash", "Gemini 1.5 Flash", VendorGoogle, "gemini-1.5-flash", domain.CategoryFast, placeholderGoogle, "online", "2.1M tokens", "2024-05-10", "High-frequency efficiency.", true},
	{"gemini-1-5-flash-8b", "Gemini 1.5 Flash-8B", VendorGoogle, "gemini-1.5-flash-8b", domain.CategoryFast, placeholderGoogle, "online", "800K tokens", "2024-09-25", "Ultra-lightweight speed.", true},
	{"gemini-1-0-pro", "Gemini 1.0 Pro", VendorGoogle, "gemini-1.0-pro", domain.CategoryThinking, placeholderGoogle, "online", "Legacy", "2023-12-06", "Stable legacy text model.", false},
	{"gemini-ultra", "Gemini Ultra 1.0", VendorGoogle, "gemini-ultra", domain.CategoryThinking, placeholderGoogle, "offline", "50K tokens", "2023-12-06", "Legacy powerhouse.", false},
	{"gemini-nano", "Gemini Nano", VendorGoogle, "gemini-nano", domain.CategoryFast, placeholderGoogle, "online", "Local", "2024-01-01", "On-device efficient model.", true},
	{"imagen-3", "Imagen 3", VendorGoogle, "imagen-3.0-generate-002", domain.CategoryImageGeneration, placeholderGoogle, "online", "420 imgs", "2024-08-15", "High-fidelity image generation.", true},

	{"claude-3-5-sonnet", "Claude 3.5 Sonnet", VendorAnthropic, "claude-3-5-sonnet-latest", domain.CategoryThinking, placeholderAnthropic, "online", "850K tokens", "2024-06-20", "Intelligence leader.", true},
	{"claude-3-opus", "Claude 3 Opus", VendorAnthropic, "claude-3-opus-latest", domain.CategoryReasoning, placeholderAnthropic, "online", "120K tokens", "2024-03-05", "Deep reasoning tasks.", false},
	{"claude-3-haiku", "Claude 3 Haiku", VendorAnthropic, "claude-3-haiku-20240307", domain.CategoryFast, placeholderAnthropic, "online", "3.5M tokens", "2024-03-05", "Instant text response.", true},

	{"gpt-4o", "GPT-4o", VendorOpenAI, "gpt-4o", domain.CategoryThinking, placeholderOpenAI, "online", "2.4M tokens", "2024-05-13", "Flagship omni model.", true},
	{"gpt-4o-mini", "GPT-4o Mini", VendorOpenAI, "gpt-4o-mini", domain.CategoryFast, placeholderOpenAI, "online", "5.2M tokens", "2024-07-18", "Cost-efficient daily driver.", true},
	{"gpt-4-turbo", "GPT-4 Turbo", VendorOpenAI, "gpt-4-turbo", domain.CategoryThinking, placeholderOpenAI, "online", "1.1M tokens", "2023-11-06", "High-capacity preview.", true},
	{"gpt-4", "GPT-4", VendorOpenAI, "gpt-4", domain.CategoryReasoning, placeholderOpenAI, "offline", "100K tokens", "2023-03-14", "Original legacy model.", false},
	{"gpt-3.5-turbo", "GPT-3.5 Turbo", VendorOpenAI, "gpt-3.5-turbo", domain.CategoryFast, placeholderOpenAI, "online", "Legacy", "2022-11-30", "Fast, legacy standard.", true},
	{"o1-preview", "OpenAI o1-Preview", VendorOpenAI, "o1-preview", domain.CategoryThinking, placeholderOpenAI, "online", "50K tokens", "2024-09-12", "Advanced reasoning (CoT).", true},
	{"o1-mini", "OpenAI o1-Mini", VendorOpenAI, "o1-mini", domain.CategoryFast, placeholderOpenAI, "online", "150K tokens", "2024-09-12", "Fast reasoning for code.", true},
	{"dall-e-3", "DALL-E 3", VendorOpenAI, "dall-e-3", domain.CategoryImageGeneration, placeholderOpenAI, "online", "800 imgs", "2023-11-05", "Semantic image generation.", true},

	{"grok-beta", "Grok Beta", VendorXAI, "grok-beta", domain.CategoryResearch, placeholderXAI, "online", "150K tokens", "2024-08-15", "Real-time knowledge.", false},
}

// DirectEntries returns a fresh copy of the seed catalog.
func DirectEntries() []domain.ModelEntry {
	entries := make([]domain.ModelEntry, 0, len(seeds))
	for _, s := range seeds {
		added, err := time.Parse(time.DateOnly, s.added)
		if err != nil {
			added = time.Time{}
		}

		entries = append(entries, domain.ModelEntry{
			ID:          s.id,
			Label:       s.label,
			Vendor:      s.vendor,
			Model:       s.model,
			Category:    s.category,
			Kind:        domain.KindDirect,
			Credential:  s.credential,
			Enabled:     s.enabled,
			Description: s.description,
			Usage:       s.usage,
			Status:      s.status,
			AddedDate:   added,
		})
	}
	return entries
}
