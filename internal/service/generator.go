package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/password"
)

// Defaults are the generator settings applied to fields a request leaves out.
type Defaults struct {
	Category string
	Length   int
	Numbers  bool
	Symbols  bool
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	defaults  Defaults
	newSource func() *rand.Rand
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(defaults Defaults) *GeneratorService {
	if defaults.Category == "" {
		defaults.Category = "random"
	}
	return &GeneratorService{
		defaults:  defaults,
		newSource: password.NewSource,
	}
}

// Generate produces a password based on the given request.
// A missing length falls back to the default clamped into the category's range;
// an explicit length outside the range is rejected.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	name := req.Category
	if name == "" {
		name = s.defaults.Category
	}

	category, err := password.ParseCategory(name,
		boolOrDefault(req.Numbers, s.defaults.Numbers),
		boolOrDefault(req.Symbols, s.defaults.Symbols),
	)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	rng := category.LengthRange()
	length := rng.Clamp(s.defaults.Length)
	if req.Length != nil {
		length = *req.Length
	}
	if !rng.Contains(length) {
		return model.GenerateResponse{}, fmt.Errorf("%w: %s accepts %s, got %d",
			password.ErrLengthOutOfRange, strings.ToLower(category.String()), rng, length)
	}

	// Each call gets its own source; *rand.Rand is not safe to share between requests.
	pw := password.Generate(category, length, s.newSource())

	return model.GenerateResponse{
		Password: pw,
		Category: strings.ToLower(category.String()),
		Length:   utf8.RuneCountInString(pw),
	}, nil
}

// Categories lists the available categories with their length bounds.
func (s *GeneratorService) Categories() []model.CategoryResponse {
	cats := password.DefaultCategories().Items()
	result := make([]model.CategoryResponse, 0, len(cats))

	for _, c := range cats {
		rng := c.LengthRange()
		resp := model.CategoryResponse{
			Name:      strings.ToLower(c.String()),
			MinLength: rng.Min,
			MaxLength: rng.Max,
		}
		if r, ok := c.(*password.Random); ok {
			for _, opt := range r.Options.Items() {
				resp.Options = append(resp.Options, strings.ToLower(opt.String()))
			}
		}
		result = append(result, resp)
	}

	return result
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
