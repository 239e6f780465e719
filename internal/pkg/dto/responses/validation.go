package responses

type ValidationResult struct {
	Kind  string      `json:"kind"`
	Valid bool        `json:"valid"`
	Data  interface{} `json:"data,omitempty"`
}
