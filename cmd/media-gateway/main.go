package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/imbecility/media-gateway/pkg/api"
	"github.com/imbecility/media-gateway/pkg/gateway"
	"github.com/imbecility/media-gateway/pkg/upstream"
)

var version = "dev"

func main() {
	portFlag := flag.Int("port", defaultPort(), "Port for API server (defaults to $PORT or 3000)")
	upstreamFlag := flag.String("upstream", upstream.DefaultBaseURL, "Base URL of the aggregation API")
	timeoutFlag := flag.Int("timeout", 0, "Max seconds per upstream call, 0 disables the limit")
	locationFlag := flag.String("location", "America/Lima", "Time zone of the consultado_en field")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	jsonLogs := flag.Bool("json-logs", false, "Write logs as JSON")
	webMode := flag.Bool("onweb", false, "Enable simple Web UI at /web")

	flag.Parse()

	gw, err := gateway.New(gateway.Config{
		UpstreamURL: *upstreamFlag,
		TimeoutSec:  *timeoutFlag,
		Debug:       *debugFlag,
		JSONLogs:    *jsonLogs,
	})
	if err != nil {
		fmt.Printf("Initialization failed: %v\n", err)
		os.Exit(1)
	}

	srv := &api.Server{
		Port:     *portFlag,
		Gateway:  gw,
		Version:  version,
		Location: loadLocation(*locationFlag),
	}

	if sterr := srv.Start(*webMode); sterr != nil {
		slog.Error("Server crashed", "err", sterr)
		os.Exit(1)
	}
}

func defaultPort() int {
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		return p
	}
	return 3000
}

// loadLocation falls back to a fixed UTC-5 zone when the tz database is unavailable.
func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("Unknown time zone, using UTC-5", "location", name, "err", err)
		return time.FixedZone("UTC-5", -5*60*60)
	}
	return loc
}
