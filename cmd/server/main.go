// Command server exposes the escandir scansion engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/syllabify?word=<word>
//	POST /api/scan        body: {"text":"...", "rhyme":true, "rhythm_format":"pattern"}
//	POST /api/scan/batch  body: {"poems":["...", ...], "rhyme":true}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	escandir "github.com/hispanistica/escandir"
)

// config is read from the environment, with flag overrides for the
// common knobs.
type config struct {
	Addr           string `env:"ESCANDIR_ADDR" env-default:":8080"`
	ExceptionsFile string `env:"ESCANDIR_EXCEPTIONS" env-default:""`
	AllowedOrigins string `env:"ESCANDIR_CORS_ORIGINS" env-default:"*"`
	BatchLimit     int    `env:"ESCANDIR_BATCH_LIMIT" env-default:"32"`
}

// ---- JSON response types ------------------------------------------------

type syllabifyResponse struct {
	Word         string   `json:"word"`
	Syllables    []string `json:"syllables"`
	Alternatives []string `json:"alternatives,omitempty"`
}

type scanRequest struct {
	Text         string `json:"text"`
	Rhyme        bool   `json:"rhyme"`
	RhythmFormat string `json:"rhythm_format"`
	RhymeOffset  int    `json:"rhyme_offset"`
}

type scanResponse struct {
	Lines []escandir.Line `json:"lines"`
}

type batchRequest struct {
	Poems        []string `json:"poems"`
	Rhyme        bool     `json:"rhyme"`
	RhythmFormat string   `json:"rhythm_format"`
	RhymeOffset  int      `json:"rhyme_offset"`
}

type batchResponse struct {
	Poems [][]escandir.Line `json:"poems"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "error", err)
	}
}

func writeError(logger *slog.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(logger, w, status, errorResponse{Error: msg})
}

func parseFormat(name string) (escandir.RhythmFormat, error) {
	switch name {
	case "", "pattern":
		return escandir.FormatPattern, nil
	case "indexed":
		return escandir.FormatIndexed, nil
	default:
		return escandir.FormatPattern, fmt.Errorf("unknown rhythm format %q", name)
	}
}

// requestID tags every request with a fresh id for log correlation.
func requestID(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		logger.Info("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// ---- handlers -----------------------------------------------------------

func handleSyllabify(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(logger, w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(logger, w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		syllables, alternatives := escandir.Syllabify(word)
		writeJSON(logger, w, http.StatusOK, syllabifyResponse{
			Word:         word,
			Syllables:    syllables,
			Alternatives: alternatives,
		})
	}
}

func handleScan(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(logger, w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body scanRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(logger, w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		format, err := parseFormat(body.RhythmFormat)
		if err != nil {
			writeError(logger, w, http.StatusBadRequest, err.Error())
			return
		}
		lines := escandir.ScanText(body.Text, escandir.ScanOptions{
			RhymeAnalysis: body.Rhyme,
			RhythmFormat:  format,
			RhymeOffset:   body.RhymeOffset,
		})
		writeJSON(logger, w, http.StatusOK, scanResponse{Lines: lines})
	}
}

func handleScanBatch(logger *slog.Logger, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(logger, w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body batchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Poems) == 0 {
			writeError(logger, w, http.StatusBadRequest, "body must be JSON with a non-empty 'poems' array")
			return
		}
		if len(body.Poems) > limit {
			writeError(logger, w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("at most %d poems per batch", limit))
			return
		}
		format, err := parseFormat(body.RhythmFormat)
		if err != nil {
			writeError(logger, w, http.StatusBadRequest, err.Error())
			return
		}
		opts := escandir.ScanOptions{
			RhymeAnalysis: body.Rhyme,
			RhythmFormat:  format,
			RhymeOffset:   body.RhymeOffset,
		}
		out := make([][]escandir.Line, len(body.Poems))
		g, _ := errgroup.WithContext(r.Context())
		for i, poem := range body.Poems {
			i, poem := i, poem
			g.Go(func() error {
				out[i] = escandir.ScanText(poem, opts)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			writeError(logger, w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(logger, w, http.StatusOK, batchResponse{Poems: out})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		logger.Error("read configuration", "error", err)
		os.Exit(1)
	}
	addr := flag.String("addr", cfg.Addr, "listen address")
	exceptions := flag.String("exceptions", cfg.ExceptionsFile, "path to a syllabification exceptions file")
	flag.Parse()

	if *exceptions != "" {
		if err := escandir.LoadExceptions(*exceptions); err != nil {
			logger.Error("load exceptions", "error", err)
			os.Exit(1)
		}
		logger.Info("exceptions loaded", "path", *exceptions)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/syllabify", handleSyllabify(logger))
	mux.HandleFunc("/api/scan/batch", handleScanBatch(logger, cfg.BatchLimit))
	mux.HandleFunc("/api/scan", handleScan(logger))

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	handler := requestID(logger, c.Handler(mux))

	logger.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		logger.Error("server", "error", err)
		os.Exit(1)
	}
}
