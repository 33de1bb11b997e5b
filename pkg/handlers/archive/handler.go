package archive

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/artpersonnft/SECthingv2/pkg/models/api"
	"github.com/artpersonnft/SECthingv2/pkg/services/archive"
)

// Handler exposes the downloaded archive tree and rendered charts over HTTP.
// It reads directly from the filesystem; there is no other state.
type Handler struct {
	registry  archive.Registry
	dataDir   string
	chartsDir string
}

func NewHandler(registry archive.Registry, dataDir, chartsDir string) *Handler {
	return &Handler{
		registry:  registry,
		dataDir:   dataDir,
		chartsDir: chartsDir,
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	var response []api.Category
	for _, name := range h.registry.ListCategories() {
		response = append(response, api.Category{Name: name})
	}
	writeJSON(w, r, response)
}

func (h *Handler) ListArchives(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	entries, err := os.ReadDir(filepath.Join(h.dataDir, category))
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, r, []api.ArchiveFile{})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]api.ArchiveFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		response = append(response, api.ArchiveFile{
			Category: category,
			Name:     e.Name(),
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}
	sort.Slice(response, func(i, j int) bool { return response[i].Name < response[j].Name })
	writeJSON(w, r, response)
}

func (h *Handler) ListCharts(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.chartsDir)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, r, []api.ChartFile{})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]api.ChartFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		response = append(response, api.ChartFile{
			Name:    e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Href:    "/charts/" + e.Name(),
		})
	}
	sort.Slice(response, func(i, j int) bool { return response[i].Name < response[j].Name })
	writeJSON(w, r, response)
}

// ServeChart streams one rendered chart page. The name is constrained to a
// bare .html file inside the charts directory.
func (h *Handler) ServeChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".html") {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.chartsDir, name))
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
