package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/imbecility/media-gateway/pkg/platforms"
)

type indexDoc struct {
	Message     string            `json:"mensaje"`
	Description string            `json:"descripción"`
	Routes      map[string]string `json:"rutas_disponibles"`
	Examples    map[string]string `json:"ejemplo"`
	OpenAPI     []string          `json:"openapi"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := indexDoc{
		Message:     "Bienvenido a la API de Descargas Multimedia 🌐",
		Description: "Convierte y descarga contenido de YouTube, TikTok y Facebook (respuestas traducidas al español).",
		Routes:      make(map[string]string),
		Examples:    make(map[string]string),
		OpenAPI:     []string{"/openapi.json", "/openapi.yaml"},
	}
	for _, rt := range platforms.Routes() {
		doc.Routes[rt.DocKey] = fmt.Sprintf("/api/%s?url=%s", rt.Name, rt.Hint)
		doc.Examples[rt.Name] = fmt.Sprintf("/api/%s?url=%s", rt.Name, rt.Example)
	}
	s.respondJSON(w, http.StatusOK, doc)
}

// BuildOpenAPI describes the proxied routes and their envelopes as an OpenAPI 3 document.
func BuildOpenAPI(version string) *openapi3.T {
	if version == "" {
		version = "dev"
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "API de Descargas Multimedia",
			Version:     version,
			Description: "Proxy de descargas de YouTube, TikTok y Facebook con respuestas en español.",
		},
		Paths: &openapi3.Paths{},
	}

	errorSchema := openapi3.NewObjectSchema().
		WithProperty("éxito", openapi3.NewBoolSchema()).
		WithProperty("mensaje", openapi3.NewStringSchema())
	errorSchema.Required = []string{"éxito", "mensaje"}

	for _, rt := range platforms.Routes() {
		successSchema := openapi3.NewObjectSchema().
			WithProperty("éxito", openapi3.NewBoolSchema()).
			WithProperty("plataforma", openapi3.NewStringSchema().WithEnum(rt.Label)).
			WithProperty("consultado_en", openapi3.NewStringSchema()).
			WithProperty("mensaje", openapi3.NewStringSchema())
		successSchema.Required = []string{"éxito", "plataforma", "mensaje"}

		op := openapi3.NewOperation()
		op.OperationID = rt.Name
		op.Summary = rt.Label
		op.AddParameter(openapi3.NewQueryParameter("url").
			WithRequired(true).
			WithDescription("Enlace del contenido, por ejemplo " + rt.Example).
			WithSchema(openapi3.NewStringSchema()))

		op.Responses = &openapi3.Responses{}
		op.Responses.Set("200", &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Contenido obtenido").WithJSONSchema(successSchema)})
		op.Responses.Set("400", &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Falta el parámetro url").WithJSONSchema(errorSchema)})
		op.Responses.Set("404", &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("El servicio remoto no pudo obtener el contenido").WithJSONSchema(errorSchema)})
		op.Responses.Set("500", &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Error interno").WithJSONSchema(errorSchema)})

		doc.Paths.Set("/api/"+rt.Name, &openapi3.PathItem{Get: op})
	}

	return doc
}

func (s *Server) handleOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	data, err := json.MarshalIndent(BuildOpenAPI(s.Version), "", "  ")
	if err != nil {
		slog.Error("OpenAPI JSON encoding failed", "err", err)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if _, werr := w.Write(data); werr != nil {
		slog.Warn("Failed to write response", "err", werr)
	}
}

func (s *Server) handleOpenAPIYAML(w http.ResponseWriter, r *http.Request) {
	data, err := yaml.Marshal(BuildOpenAPI(s.Version))
	if err != nil {
		slog.Error("OpenAPI YAML encoding failed", "err", err)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	if _, werr := w.Write(data); werr != nil {
		slog.Warn("Failed to write response", "err", werr)
	}
}
