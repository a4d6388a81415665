package platforms

import (
	"fmt"

	"github.com/imbecility/media-gateway/pkg/models"
	"github.com/imbecility/media-gateway/pkg/upstream"
)

var TikTok = Platform[models.TikTokResponse, models.TikTokResult]{
	Name:    "tiktok",
	DocKey:  "tiktok",
	Label:   "TikTok",
	Path:    "/download/tiktok",
	Success: "✅ Video de TikTok obtenido correctamente.",
	Failure: "No se pudo obtener el video de TikTok.",
	Hint:    "<enlace_de_tiktok>",
	Example: "https://vt.tiktok.com/ZSB2HNoKR/",
	Map:     mapTikTok,
}

// firstMedia returns the first media entry, or ErrEmptyMedia for an empty list.
func firstMedia(media []models.TikTokMedia) (models.TikTokMedia, error) {
	if len(media) == 0 {
		return models.TikTokMedia{}, upstream.ErrEmptyMedia
	}
	return media[0], nil
}

func mapTikTok(resp *models.TikTokResponse) (models.TikTokResult, error) {
	d := resp.Data
	if d == nil || d.Author == nil || d.Music == nil || d.Meta == nil {
		return models.TikTokResult{}, fmt.Errorf("%w: tiktok data block incomplete", upstream.ErrSchemaMismatch)
	}

	media, err := firstMedia(d.Meta.Media)
	if err != nil {
		return models.TikTokResult{}, fmt.Errorf("tiktok %s: %w", d.ID, err)
	}

	return models.TikTokResult{
		ID:              d.ID,
		Region:          d.Region,
		Title:           d.Title,
		DurationSeconds: d.Duration,
		Plays:           d.Repro,
		Likes:           d.Like,
		Shares:          d.Share,
		Comments:        d.Comment,
		TotalDownloads:  d.Download,
		Published:       d.Published,
		Author: models.TikTokCreator{
			ID:       d.Author.ID,
			Username: d.Author.Username,
			Nickname: d.Author.Nickname,
		},
		Music: models.TikTokSong{
			Title:           d.Music.Title,
			Author:          d.Music.Author,
			DurationSeconds: d.Music.Duration,
		},
		Links: models.TikTokLinks{
			Type:         media.Type,
			OriginalSize: media.SizeOrg,
			HDSize:       media.SizeHD,
			OriginalURL:  media.Org,
			HDURL:        media.HD,
		},
	}, nil
}
