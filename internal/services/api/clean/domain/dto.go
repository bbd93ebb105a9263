// Package domain holds DTOs for the clean http and service contracts
package domain

// TrimInput is the input for the bare trimmer
type TrimInput struct {
	Text string `json:"text"`
}

// TextOutput carries a single rewritten text
type TextOutput struct {
	Text string `json:"text"`
}

// CleanInput drives the full pipeline
// nil switches take the service defaults; locale "auto" guesses from the text
type CleanInput struct {
	Text                   string `json:"text"`
	Locale                 string `json:"locale,omitempty" validate:"omitempty,eq=auto|bcp47_language_tag"`
	Form                   string `json:"form,omitempty" validate:"omitempty,oneof=none nfc nfd nfkc nfkd"`
	FoldWidth              *bool  `json:"fold_width,omitempty"`
	StripControl           *bool  `json:"strip_control,omitempty"`
	KeepWhitespaceControls *bool  `json:"keep_whitespace_controls,omitempty"`
	Typography             *bool  `json:"typography,omitempty"`
	Whitespace             *bool  `json:"whitespace,omitempty"`
}

// CleanOutput is the pipeline result plus what produced it
// Graphemes counts user perceived characters of Text
type CleanOutput struct {
	Text      string   `json:"text"`
	Graphemes int      `json:"graphemes"`
	Script    string   `json:"script,omitempty"`
	Locale    string   `json:"locale"`
	Form      string   `json:"form"`
	Stages    []string `json:"stages"`
}

// TypographyInput applies one locale profile
type TypographyInput struct {
	Text   string `json:"text"`
	Locale string `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// Profile describes a registered typography profile
type Profile struct {
	Name     string   `json:"name"`
	Locale   string   `json:"locale"`
	Rules    int      `json:"rules"`
	Leading  []string `json:"leading"`
	Trailing []string `json:"trailing"`
	Terminal []string `json:"terminal"`
}
