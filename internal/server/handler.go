package server

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/javapkg/builddep/pkg/artifact"
	"github.com/javapkg/builddep/pkg/builddep"
	"github.com/javapkg/builddep/pkg/config"
	"github.com/javapkg/builddep/pkg/errors"
	"github.com/javapkg/builddep/pkg/pom"
	"github.com/javapkg/builddep/pkg/typereg"
)

type handler struct {
	logger    *log.Logger
	extractor *builddep.Extractor
	types     *typereg.Registry
	cache     *lru.Cache[string, cachedExtraction]
}

// cachedExtraction is an extraction keyed by descriptor digest.
// Entries are never modified after insertion.
type cachedExtraction struct {
	project string
	result  *builddep.Result
}

// ExtractResponse is the body of a successful extraction.
type ExtractResponse struct {
	ID        string              `json:"id"`
	Project   string              `json:"project"`
	Artifacts []artifact.Artifact `json:"artifacts"`
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) extract(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, h.logger, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if len(body) == 0 {
		writeError(w, h.logger, errors.New(errors.ErrCodeInvalidInput, "request body is empty"))
		return
	}

	ex, hit, err := h.lookup(body)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}

	arts := ex.result.Artifacts()
	if r.URL.Query().Get("sorted") == "true" {
		arts = ex.result.Sorted()
	}
	if arts == nil {
		arts = []artifact.Artifact{}
	}

	resp := ExtractResponse{
		ID:        uuid.New().String(),
		Project:   ex.project,
		Artifacts: arts,
	}
	h.logger.Debug("extracted", "id", resp.ID, "project", resp.Project, "artifacts", len(arts))
	writeJSON(w, http.StatusOK, resp)
}

// lookup returns the extraction for body, parsing and extracting it on a
// cache miss. Invalid descriptors are not cached.
func (h *handler) lookup(body []byte) (cachedExtraction, bool, error) {
	sum := sha256.Sum256(body)
	key := hex.EncodeToString(sum[:])
	if ex, ok := h.cache.Get(key); ok {
		return ex, true, nil
	}

	project, err := pom.ParseBytes(body)
	if err != nil {
		return cachedExtraction{}, false, err
	}
	res := builddep.NewResult()
	h.extractor.Extract(project, res)

	ex := cachedExtraction{project: project.Coordinate().String(), result: res}
	h.cache.Add(key, ex)
	return ex, false, nil
}

func (h *handler) policy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.Snapshot(h.extractor.Policy(), h.extractor.Exclusions(), h.types))
}
