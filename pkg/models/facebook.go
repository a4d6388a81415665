package models

import "encoding/json"

// FacebookResponse is the upstream body of /download/facebook. Two shapes are
// accepted: a data wrapper (title, hd, url) or the flat title, isHdAvailable, urls.
type FacebookResponse struct {
	Status
	Data          *FacebookData   `json:"data"`
	Title         string          `json:"title"`
	IsHDAvailable *bool           `json:"isHdAvailable"`
	URLs          json.RawMessage `json:"urls"`
}

type FacebookData struct {
	Title string          `json:"title"`
	HD    *bool           `json:"hd"`
	URL   json.RawMessage `json:"url" validate:"required"`
}

// FacebookResult is the Spanish-labeled output of /api/facebook.
type FacebookResult struct {
	Title       string          `json:"título"`
	HDAvailable *bool           `json:"disponible_hd"`
	Links       json.RawMessage `json:"enlaces"`
}
