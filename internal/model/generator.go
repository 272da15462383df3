package model

// GenerateRequest represents a password generation request.
// Pointers distinguish a missing field (nil -> configured default) from an explicit zero value.
type GenerateRequest struct {
	Category string `json:"category"`
	Length   *int   `json:"length"`
	Numbers  *bool  `json:"numbers"`
	Symbols  *bool  `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Category string `json:"category"`
	Length   int    `json:"length"`
}

// CategoryResponse describes a password category and its valid lengths.
type CategoryResponse struct {
	Name      string   `json:"name"`
	MinLength int      `json:"min_length"`
	MaxLength int      `json:"max_length"`
	Options   []string `json:"options,omitempty"`
}
