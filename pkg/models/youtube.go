package models

import "encoding/json"

// YouTubeResponse is the upstream body of /download/ytmp3 and /download/ytmp4.
type YouTubeResponse struct {
	Status
	Data *YouTubeData `json:"data" validate:"required"`
}

type YouTubeData struct {
	Title              string           `json:"title"`
	ID                 json.RawMessage  `json:"id"`
	Author             string           `json:"author"`
	Image              string           `json:"image"`
	ImageMaxResolution string           `json:"image_max_resolution"`
	Private            *bool            `json:"private"`
	Views              json.RawMessage  `json:"views"`
	Likes              json.RawMessage  `json:"likes"`
	Comments           json.RawMessage  `json:"comments"`
	Category           string           `json:"category"`
	Duration           json.RawMessage  `json:"duration"`
	Download           *YouTubeDownload `json:"download" validate:"required"`
}

type YouTubeDownload struct {
	Filename  string `json:"filename"`
	Quality   string `json:"quality"`
	Size      string `json:"size"`
	Extension string `json:"extension"`
	URL       string `json:"url" validate:"required"`
}

// YouTubeResult is the Spanish-labeled output of both YouTube routes.
type YouTubeResult struct {
	Title              string          `json:"título"`
	ID                 json.RawMessage `json:"id"`
	Author             string          `json:"autor"`
	Image              string          `json:"imagen"`
	ImageMaxResolution string          `json:"imagen_alta_resolución"`
	Private            *bool           `json:"privado"`
	Views              json.RawMessage `json:"vistas"`
	Likes              json.RawMessage `json:"me_gusta"`
	Comments           json.RawMessage `json:"comentarios"`
	Category           string          `json:"categoría"`
	DurationSeconds    json.RawMessage `json:"duración_segundos"`
	Download           YouTubeFile     `json:"descarga"`
}

type YouTubeFile struct {
	Filename  string `json:"nombre_archivo"`
	Quality   string `json:"calidad"`
	Size      string `json:"tamaño"`
	Extension string `json:"extensión"`
	Link      string `json:"enlace"`
}
