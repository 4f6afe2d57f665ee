package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/MalithGihan/syllabus-service/internal/config"
	"github.com/MalithGihan/syllabus-service/internal/llm"
	"github.com/MalithGihan/syllabus-service/internal/logger"
	"github.com/MalithGihan/syllabus-service/internal/parse"
	"github.com/MalithGihan/syllabus-service/internal/store"
	"github.com/MalithGihan/syllabus-service/pkg/types"
)

type pingResp struct {
	OK         bool   `json:"ok"`
	BaseURL    string `json:"base_url"`
	Configured bool   `json:"configured"`
	Reachable  bool   `json:"reachable"`
	Note       string `json:"note,omitempty"`
}

func main() {
	_ = godotenv.Load()
	logger.Init()
	defer logger.Close()

	cfg := config.FromEnv()

	st, err := store.New(cfg.DataRoot)
	if err != nil {
		logger.Fatal("store init failed", zap.Error(err))
	}

	var client *llm.Client
	var extractor parse.Extractor
	if cfg.HasLLM() {
		client = llm.NewClient(cfg)
		extractor = client
	} else {
		logger.Warn("OPENAI_API_KEY not set, heuristic extraction only")
	}
	parser := parse.New(cfg, extractor)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.FrontendOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"syllabus-service"}`))
	})

	r.Get("/llm/ping", func(w http.ResponseWriter, req *http.Request) {
		out := pingResp{OK: true, BaseURL: cfg.BaseURL, Configured: cfg.HasLLM()}
		if client != nil {
			out.Reachable = client.Ping(req.Context())
		}
		if !out.Configured {
			out.Note = "OPENAI_API_KEY not set — heuristic extraction only."
		} else if !out.Reachable {
			out.Note = "LLM endpoint not reachable; parses will fall back to heuristics."
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	})

	r.Post("/parse-syllabus", func(w http.ResponseWriter, req *http.Request) {
		data, _, maxPages, ok := readSyllabus(w, req, cfg)
		if !ok {
			return
		}
		res := parser.Parse(req.Context(), data, maxPages)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	})

	// Upload alias: same parse, but the original PDF is archived first.
	r.Post("/upload", func(w http.ResponseWriter, req *http.Request) {
		data, filename, maxPages, ok := readSyllabus(w, req, cfg)
		if !ok {
			return
		}
		jobID := uuid.NewString()
		if _, err := st.Archive(jobID, filename, data); err != nil {
			logger.Error("archive failed", zap.String("job", jobID), zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res := parser.Parse(req.Context(), data, maxPages)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			JobID  string            `json:"jobId"`
			Result types.ParseResult `json:"result"`
		}{JobID: jobID, Result: res})
	})

	logger.Info("syllabus-service listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// readSyllabus pulls the uploaded PDF and the optional max_pages override
// out of a multipart request. On failure it writes the error response and
// returns ok=false.
func readSyllabus(w http.ResponseWriter, req *http.Request, cfg config.Config) (data []byte, filename string, maxPages int, ok bool) {
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, "", 0, false
	}
	f, fh, err := req.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return nil, "", 0, false
	}
	defer f.Close()

	ct := fh.Header.Get("Content-Type")
	if ct != "" && ct != "application/pdf" && !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		http.Error(w, "Only PDF files are supported", http.StatusBadRequest)
		return nil, "", 0, false
	}

	data, err = io.ReadAll(f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, "", 0, false
	}

	maxPages = cfg.MaxPages
	if v := req.FormValue("max_pages"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxPages = n
		}
	}
	return data, fh.Filename, maxPages, true
}
