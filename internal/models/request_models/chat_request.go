package request_models

type SubmitMessageRequest struct {
	Message string `json:"message"`
}

// ProfileUpdateRequest carries a partial profile edit: only non-nil
// fields are applied. Scalar fields accept "None" (or empty) to clear,
// mirroring the selection widgets they come from.
type ProfileUpdateRequest struct {
	Mode       *string `json:"mode,omitempty"`
	Days       *string `json:"days,omitempty"`
	Budget     *string `json:"budget,omitempty"`
	Style      *string `json:"style,omitempty"`
	Pace       *string `json:"pace,omitempty"`
	Companions *string `json:"companions,omitempty"`
	Season     *string `json:"season,omitempty"`
	Language   *string `json:"language,omitempty"`
	Detail     *string `json:"detail,omitempty"`

	Cities      *[]string `json:"cities,omitempty"`
	Interests   *[]string `json:"interests,omitempty"`
	Constraints *[]string `json:"constraints,omitempty"`
	Extras      *[]string `json:"extras,omitempty"`
}
