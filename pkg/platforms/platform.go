// Package platforms holds the per-platform field-mapping tables: which upstream
// path is called, how the route is labeled, and how the upstream payload is renamed
// into the Spanish output schema.
package platforms

import "github.com/imbecility/media-gateway/pkg/models"

// Platform describes one proxied route. T is the upstream schema, R the output schema.
type Platform[T models.Payload, R any] struct {
	// Name is the route segment under /api/ and the platform key used in logs.
	Name string
	// DocKey is the key the route is listed under in the documentation route.
	DocKey string
	// Label is the human-readable platform returned in the "plataforma" field.
	Label string
	// Path is the upstream path the source URL is forwarded to.
	Path string
	// Success is the message returned with a mapped result.
	Success string
	// Failure is the message returned when the upstream reports status: false.
	Failure string
	// Hint is the placeholder shown for the url parameter in the documentation route.
	Hint string
	// Example is a sample source URL shown in the documentation route.
	Example string
	// Map renames the validated upstream payload into the output schema.
	Map func(*T) (R, error)
}

// Route is the type-erased view of a Platform used for docs and route listing.
type Route struct {
	Name    string
	DocKey  string
	Label   string
	Path    string
	Hint    string
	Example string
}

func (p Platform[T, R]) Route() Route {
	return Route{Name: p.Name, DocKey: p.DocKey, Label: p.Label, Path: p.Path, Hint: p.Hint, Example: p.Example}
}

// Routes lists the four proxied routes in registration order.
func Routes() []Route {
	return []Route{
		YouTubeAudio.Route(),
		YouTubeVideo.Route(),
		TikTok.Route(),
		Facebook.Route(),
	}
}
