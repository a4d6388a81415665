package platforms

import (
	"fmt"

	"github.com/imbecility/media-gateway/pkg/models"
	"github.com/imbecility/media-gateway/pkg/upstream"
)

var YouTubeAudio = Platform[models.YouTubeResponse, models.YouTubeResult]{
	Name:    "ytmp3",
	DocKey:  "youtube_mp3",
	Label:   "YouTube (MP3)",
	Path:    "/download/ytmp3",
	Success: "✅ Audio de YouTube obtenido correctamente.",
	Failure: "No se pudo obtener el audio.",
	Hint:    "<enlace_de_youtube>",
	Example: "https://youtu.be/TdrL3QxjyVw",
	Map:     mapYouTube,
}

var YouTubeVideo = Platform[models.YouTubeResponse, models.YouTubeResult]{
	Name:    "ytmp4",
	DocKey:  "youtube_mp4",
	Label:   "YouTube (MP4)",
	Path:    "/download/ytmp4",
	Success: "✅ Video de YouTube obtenido correctamente.",
	Failure: "No se pudo obtener el video.",
	Hint:    "<enlace_de_youtube>",
	Example: "https://youtu.be/TdrL3QxjyVw",
	Map:     mapYouTube,
}

func mapYouTube(resp *models.YouTubeResponse) (models.YouTubeResult, error) {
	d := resp.Data
	if d == nil || d.Download == nil {
		return models.YouTubeResult{}, fmt.Errorf("%w: youtube data or download block missing", upstream.ErrSchemaMismatch)
	}

	return models.YouTubeResult{
		Title:              d.Title,
		ID:                 d.ID,
		Author:             d.Author,
		Image:              d.Image,
		ImageMaxResolution: d.ImageMaxResolution,
		Private:            d.Private,
		Views:              d.Views,
		Likes:              d.Likes,
		Comments:           d.Comments,
		Category:           d.Category,
		DurationSeconds:    d.Duration,
		Download: models.YouTubeFile{
			Filename:  d.Download.Filename,
			Quality:   d.Download.Quality,
			Size:      d.Download.Size,
			Extension: d.Download.Extension,
			Link:      d.Download.URL,
		},
	}, nil
}
