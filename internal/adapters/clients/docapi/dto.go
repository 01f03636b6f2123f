package docapi

import "encoding/json"

// documentDTO is one named document on the wire.
type documentDTO struct {
	Name     string          `json:"name"`
	Document json.RawMessage `json:"document"`
}

// documentListDTO is the body of a collection listing.
type documentListDTO struct {
	Documents []documentDTO `json:"documents"`
}

// toDocuments unwraps a listing in the order the API returned it, which the
// API guarantees is by name.
func toDocuments(dto documentListDTO) []json.RawMessage {
	out := make([]json.RawMessage, len(dto.Documents))
	for i, d := range dto.Documents {
		out[i] = d.Document
	}
	return out
}
