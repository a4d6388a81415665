package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/imbecility/media-gateway/pkg/gateway"
)

const (
	ytFixture = `{"status": true, "data": {"title": "Song", "id": "abc", "author": "X",
		"download": {"filename": "f.mp3", "quality": "128", "size": "3MB", "extension": "mp3", "url": "http://x/f.mp3"}}}`
	tiktokFixture = `{"status": true, "data": {"id": "7300", "region": "PE", "title": "clip", "duration": 15,
		"repro": 1000, "like": 200, "share": 5, "comment": 7, "download": 9, "published": 1700000000,
		"author": {"id": "u1", "username": "user", "nickname": "Nick"},
		"music": {"title": "sound", "author": "artist", "duration": 30},
		"meta": {"media": [{"type": "video", "size_org": 2048, "size_hd": 4096, "org": "http://t/org.mp4", "hd": "http://t/hd.mp4"}]}}}`
	facebookFixture = `{"status": true, "data": {"title": "fb", "hd": true, "url": [{"hd": "http://f/hd.mp4"}]}}`
)

var fixedNow = time.Date(2026, time.October, 19, 14, 3, 5, 0, time.UTC)

// newTestServer wires the API to a fake aggregation API serving bodies by upstream path.
func newTestServer(t *testing.T, bodies map[string]string) (http.Handler, *int) {
	t.Helper()
	calls := 0
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(fake.Close)

	s := &Server{
		Gateway:  gateway.NewService(fake.Client(), fake.URL),
		Version:  "test",
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	}
	return s.Handler(true), &calls
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

var routes = []string{"/api/ytmp3", "/api/ytmp4", "/api/tiktok", "/api/facebook"}

func TestMissingURLParameter(t *testing.T) {
	h, calls := newTestServer(t, nil)
	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			for _, target := range []string{route, route + "?url="} {
				rec := get(t, h, target)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				body := decodeBody(t, rec)
				assert.Equal(t, false, body["éxito"])
				assert.Equal(t, "Falta el parámetro 'url'.", body["mensaje"])
			}
		})
	}
	assert.Zero(t, *calls)
}

func TestUpstreamUnreachable(t *testing.T) {
	fake := httptest.NewServer(http.NotFoundHandler())
	base := fake.URL
	fake.Close()

	s := &Server{Gateway: gateway.NewService(http.DefaultClient, base)}
	h := s.Handler(false)

	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			rec := get(t, h, route+"?url=https://example.com/v")
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["éxito"])
			assert.Equal(t, "Error interno del servidor.", body["mensaje"])
			assert.NotContains(t, rec.Body.String(), "connect")
			assert.NotContains(t, rec.Body.String(), "127.0.0.1")
		})
	}
}

func TestUpstreamMalformedJSON(t *testing.T) {
	bodies := map[string]string{
		"/download/ytmp3":    `{"status": tr`,
		"/download/ytmp4":    `<html>oops</html>`,
		"/download/tiktok":   `not json`,
		"/download/facebook": ``,
	}
	h, _ := newTestServer(t, bodies)
	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			rec := get(t, h, route+"?url=https://example.com/v")
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"éxito":false,"mensaje":"Error interno del servidor."}`, rec.Body.String())
		})
	}
}

func TestUpstreamReportsFailure(t *testing.T) {
	bodies := map[string]string{
		"/download/ytmp3":    `{"status": false}`,
		"/download/ytmp4":    `{"status": false}`,
		"/download/tiktok":   `{"status": false, "message": "private video"}`,
		"/download/facebook": `{"status": false}`,
	}
	want := map[string]string{
		"/api/ytmp3":    "No se pudo obtener el audio.",
		"/api/ytmp4":    "No se pudo obtener el video.",
		"/api/tiktok":   "No se pudo obtener el video de TikTok.",
		"/api/facebook": "No se pudo obtener el video de Facebook.",
	}
	h, _ := newTestServer(t, bodies)
	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			rec := get(t, h, route+"?url=https://example.com/v")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["éxito"])
			assert.Equal(t, want[route], body["mensaje"])
		})
	}
}

func TestUpstreamMissingStatusIsFailure(t *testing.T) {
	bodies := map[string]string{
		"/download/ytmp3":    `{"data": {}}`,
		"/download/facebook": `{"status": null, "data": {"title": "fb", "url": []}}`,
	}
	h, _ := newTestServer(t, bodies)

	rec := get(t, h, "/api/ytmp3?url=https://youtu.be/abc")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"éxito":false,"mensaje":"No se pudo obtener el audio."}`, rec.Body.String())

	rec = get(t, h, "/api/facebook?url=https://fb.watch/x")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"éxito":false,"mensaje":"No se pudo obtener el video de Facebook."}`, rec.Body.String())
}

func TestUpstreamTrailingData(t *testing.T) {
	h, _ := newTestServer(t, map[string]string{"/download/ytmp3": ytFixture + ` trailing-garbage`})
	rec := get(t, h, "/api/ytmp3?url=https://youtu.be/abc")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"éxito":false,"mensaje":"Error interno del servidor."}`, rec.Body.String())
}

func TestYouTubeAudio(t *testing.T) {
	h, calls := newTestServer(t, map[string]string{"/download/ytmp3": ytFixture})

	rec := get(t, h, "/api/ytmp3?url=https://youtu.be/abc")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["éxito"])
	assert.Equal(t, "YouTube (MP3)", body["plataforma"])
	assert.Equal(t, "Song", body["título"])
	assert.Equal(t, "abc", body["id"])
	assert.Equal(t, "X", body["autor"])
	assert.Equal(t, "19/10/2026, 14:03:05", body["consultado_en"])
	assert.Equal(t, "✅ Audio de YouTube obtenido correctamente.", body["mensaje"])

	descarga, ok := body["descarga"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "http://x/f.mp3", descarga["enlace"])
	assert.Equal(t, "f.mp3", descarga["nombre_archivo"])
	assert.Equal(t, "128", descarga["calidad"])
	assert.Equal(t, "3MB", descarga["tamaño"])
	assert.Equal(t, "mp3", descarga["extensión"])
}

func TestYouTubeVideo(t *testing.T) {
	h, _ := newTestServer(t, map[string]string{"/download/ytmp4": ytFixture})

	rec := get(t, h, "/api/ytmp4?url=https://youtu.be/abc")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "YouTube (MP4)", body["plataforma"])
	assert.Equal(t, "✅ Video de YouTube obtenido correctamente.", body["mensaje"])
}

func TestTikTok(t *testing.T) {
	h, _ := newTestServer(t, map[string]string{"/download/tiktok": tiktokFixture})

	rec := get(t, h, "/api/tiktok?url=https://vt.tiktok.com/ZSB2HNoKR/")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "TikTok", body["plataforma"])
	assert.Equal(t, "PE", body["región"])
	assert.Equal(t, float64(1000), body["reproducciones"])
	assert.Equal(t, float64(9), body["descargas_totales"])
	assert.Equal(t, map[string]any{"id": "u1", "usuario": "user", "nombre": "Nick"}, body["autor"])
	assert.Equal(t, map[string]any{"título": "sound", "autor": "artist", "duración_segundos": float64(30)}, body["música"])
	assert.Equal(t, map[string]any{
		"tipo":            "video",
		"tamaño_original": float64(2048),
		"tamaño_hd":       float64(4096),
		"video_original":  "http://t/org.mp4",
		"video_hd":        "http://t/hd.mp4",
	}, body["enlaces"])
}

func TestTikTokNumericIDs(t *testing.T) {
	h, _ := newTestServer(t, map[string]string{"/download/tiktok": `{"status": true, "data": {"id": 7300, "title": "clip",
		"author": {"id": 42, "username": "user"}, "music": {"title": "sound"},
		"meta": {"media": [{"type": "video", "org": "http://t/org.mp4"}]}}}`})

	rec := get(t, h, "/api/tiktok?url=https://vt.tiktok.com/ZSB2HNoKR/")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":7300,`)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7300), body["id"])
	autor, ok := body["autor"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), autor["id"])
}

func TestTikTokEmptyMedia(t *testing.T) {
	h, _ := newTestServer(t, map[string]string{"/download/tiktok": `{"status": true, "data": {"id": "1",
		"author": {"id": "u"}, "music": {"title": "m"}, "meta": {"media": []}}}`})

	rec := get(t, h, "/api/tiktok?url=https://vt.tiktok.com/ZS/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"éxito":false,"mensaje":"Error interno del servidor."}`, rec.Body.String())
}

func TestFacebook(t *testing.T) {
	h, _ := newTestServer(t, map[string]string{"/download/facebook": facebookFixture})

	rec := get(t, h, "/api/facebook?url=https://fb.watch/rOnqYjdiUo/")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Facebook", body["plataforma"])
	assert.Equal(t, "fb", body["título"])
	assert.Equal(t, true, body["disponible_hd"])
	assert.Equal(t, []any{map[string]any{"hd": "http://f/hd.mp4"}}, body["enlaces"])
}

func TestResponsesAreDeterministic(t *testing.T) {
	h, _ := newTestServer(t, map[string]string{
		"/download/ytmp3":    ytFixture,
		"/download/tiktok":   tiktokFixture,
		"/download/facebook": facebookFixture,
	})
	for _, target := range []string{"/api/ytmp3?url=a", "/api/tiktok?url=b", "/api/facebook?url=c"} {
		first := get(t, h, target).Body.String()
		second := get(t, h, target).Body.String()
		assert.Equal(t, first, second, target)
	}

	rec := get(t, h, "/api/facebook?url=c")
	assert.Equal(t,
		`{"éxito":true,"plataforma":"Facebook","título":"fb","disponible_hd":true,"enlaces":[{"hd":"http://f/hd.mp4"}],"consultado_en":"19/10/2026, 14:03:05","mensaje":"✅ Video de Facebook obtenido correctamente."}`+"\n",
		rec.Body.String())
}

func TestSourceURLIsEncoded(t *testing.T) {
	var got string
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		_, _ = io.WriteString(w, `{"status": false}`)
	}))
	defer fake.Close()

	s := &Server{Gateway: gateway.NewService(fake.Client(), fake.URL)}
	rec := get(t, s.Handler(false), "/api/ytmp3?url="+"https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3Dabc%26t%3D1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3Dabc%26t%3D1", got)
}

func TestMethodNotAllowed(t *testing.T) {
	h, calls := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ytmp3?url=x", strings.NewReader("{}")))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["éxito"])
	assert.Zero(t, *calls)
}

func TestCORS(t *testing.T) {
	h, _ := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/tiktok", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = get(t, h, "/api/tiktok")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIndex(t *testing.T) {
	h, _ := newTestServer(t, nil)
	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["mensaje"], "Bienvenido")
	rutas, ok := body["rutas_disponibles"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"youtube_mp3": "/api/ytmp3?url=<enlace_de_youtube>",
		"youtube_mp4": "/api/ytmp4?url=<enlace_de_youtube>",
		"tiktok":      "/api/tiktok?url=<enlace_de_tiktok>",
		"facebook":    "/api/facebook?url=<enlace_de_facebook>",
	}, rutas)
	ejemplo, ok := body["ejemplo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/api/tiktok?url=https://vt.tiktok.com/ZSB2HNoKR/", ejemplo["tiktok"])
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestServer(t, nil)
	rec := get(t, h, "/api/instagram?url=x")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"éxito":false,"mensaje":"Ruta no encontrada."}`, rec.Body.String())
}

func TestOpenAPIDocument(t *testing.T) {
	doc := BuildOpenAPI("1.2.3")
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "1.2.3", doc.Info.Version)
	for _, route := range routes {
		item := doc.Paths.Find(route)
		require.NotNil(t, item, route)
		require.NotNil(t, item.Get, route)
		require.Len(t, item.Get.Parameters, 1)
		assert.Equal(t, "url", item.Get.Parameters[0].Value.Name)
		assert.True(t, item.Get.Parameters[0].Value.Required)
		for _, code := range []string{"200", "400", "404", "500"} {
			assert.NotNil(t, item.Get.Responses.Value(code), "%s %s", route, code)
		}
	}
}

func TestOpenAPIRoutes(t *testing.T) {
	h, _ := newTestServer(t, nil)

	rec := get(t, h, "/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "3.0.3", body["openapi"])
	paths, ok := body["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/tiktok")

	rec = get(t, h, "/openapi.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestWebUI(t *testing.T) {
	h, _ := newTestServer(t, nil)
	rec := get(t, h, "/web")
	require.Equal(t, http.StatusOK, rec.Code)
	page := rec.Body.String()
	assert.Contains(t, page, `<option value="ytmp3">YouTube (MP3)</option>`)
	// Upstream values reach the page as text nodes and vetted hrefs only.
	assert.NotContains(t, page, "innerHTML")
	assert.NotContains(t, page, "insertAdjacentHTML")
	assert.Contains(t, page, "textContent")
	assert.Contains(t, page, `parsed.protocol === 'http:' || parsed.protocol === 'https:'`)

	s := &Server{}
	rec = get(t, s.Handler(false), "/web")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTimestamp(t *testing.T) {
	lima := time.FixedZone("UTC-5", -5*60*60)
	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want string
	}{
		{name: "zero padded morning", now: time.Date(2026, time.January, 5, 9, 4, 7, 0, time.UTC), loc: time.UTC, want: "05/01/2026, 09:04:07"},
		{name: "afternoon stays 24h", now: time.Date(2026, time.October, 19, 14, 3, 5, 0, time.UTC), loc: time.UTC, want: "19/10/2026, 14:03:05"},
		{name: "converted to location", now: time.Date(2026, time.October, 19, 3, 0, 0, 0, time.UTC), loc: lima, want: "18/10/2026, 22:00:00"},
		{name: "nil location is utc", now: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), want: "01/03/2026, 00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Server{Location: tt.loc, Now: func() time.Time { return tt.now }}
			assert.Equal(t, tt.want, s.timestamp())
		})
	}
}

func TestStatusFor(t *testing.T) {
	status, msg := statusFor(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, msgInternal, msg)
}
