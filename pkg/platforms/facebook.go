package platforms

import (
	"fmt"

	"github.com/imbecility/media-gateway/pkg/models"
	"github.com/imbecility/media-gateway/pkg/upstream"
)

var Facebook = Platform[models.FacebookResponse, models.FacebookResult]{
	Name:    "facebook",
	DocKey:  "facebook",
	Label:   "Facebook",
	Path:    "/download/facebook",
	Success: "✅ Video de Facebook obtenido correctamente.",
	Failure: "No se pudo obtener el video de Facebook.",
	Hint:    "<enlace_de_facebook>",
	Example: "https://fb.watch/rOnqYjdiUo/",
	Map:     mapFacebook,
}

// mapFacebook prefers the data wrapper and falls back to the flat top-level shape.
// The links value is passed through as the upstream sent it.
func mapFacebook(resp *models.FacebookResponse) (models.FacebookResult, error) {
	if d := resp.Data; d != nil {
		return models.FacebookResult{
			Title:       d.Title,
			HDAvailable: d.HD,
			Links:       d.URL,
		}, nil
	}

	if len(resp.URLs) == 0 {
		return models.FacebookResult{}, fmt.Errorf("%w: facebook payload has neither data nor urls", upstream.ErrSchemaMismatch)
	}
	return models.FacebookResult{
		Title:       resp.Title,
		HDAvailable: resp.IsHDAvailable,
		Links:       resp.URLs,
	}, nil
}
