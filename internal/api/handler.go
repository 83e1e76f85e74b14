package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"

	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/watcher"
)

// Handler contains HTTP handlers for the API.
// One mutex serializes every request against the draft controller and the
// live settings, including reloads triggered by the file watcher.
type Handler struct {
	mu     sync.Mutex
	vault  *VaultContext
	hub    *WebSocketHub
	logger *log.Logger
}

// NewHandler creates a new Handler. hub may be nil to disable live updates.
func NewHandler(vault *VaultContext, hub *WebSocketHub, logger *log.Logger) *Handler {
	return &Handler{
		vault:  vault,
		hub:    hub,
		logger: logger,
	}
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)

	// Persisted settings
	mux.HandleFunc("GET /api/v1/settings", h.GetSettings)
	mux.HandleFunc("GET /api/v1/styles", h.GetStyles)

	// Draft palette
	mux.HandleFunc("GET /api/v1/draft", h.GetDraft)
	mux.HandleFunc("POST /api/v1/draft/palette", h.AddColor)
	mux.HandleFunc("PATCH /api/v1/draft/palette/{id}", h.UpdateColor)
	mux.HandleFunc("DELETE /api/v1/draft/palette/{id}", h.RemoveColor)
	mux.HandleFunc("POST /api/v1/draft/save", h.SavePalette)
	mux.HandleFunc("POST /api/v1/draft/revert", h.RevertPalette)

	// Options
	mux.HandleFunc("POST /api/v1/options/{key}/toggle", h.ToggleOption)

	// File assignments
	mux.HandleFunc("GET /api/v1/file-colors", h.ListFileColors)
	mux.HandleFunc("PUT /api/v1/file-colors", h.AssignFileColor)
	mux.HandleFunc("DELETE /api/v1/file-colors", h.UnassignFileColor)

	if h.hub != nil {
		mux.HandleFunc("GET /api/v1/ws", h.hub.ServeWS)
	}
}

// --- Response types ---

// DraftResponse is the JSON view of the draft controller.
type DraftResponse struct {
	Palette []model.PaletteColor `json:"palette"`
	Options model.Options        `json:"options"`
	Dirty   bool                 `json:"dirty"`
}

// OptionResponse reports an option's value after a toggle.
type OptionResponse struct {
	Key   model.OptionKey `json:"key"`
	Value bool            `json:"value"`
}

// ColorRequest is the body for adding or editing a draft color.
// Nil fields are left unchanged.
type ColorRequest struct {
	Name  *string `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}

// AssignRequest is the body for assigning a color to a path.
type AssignRequest struct {
	Path  string `json:"path"`
	Color string `json:"color"`
}

func (h *Handler) draft() DraftResponse {
	c := h.vault.Controller
	return DraftResponse{
		Palette: c.Palette(),
		Options: c.Options(),
		Dirty:   c.Dirty(),
	}
}

func (h *Handler) broadcast(msgType string, payload any) {
	if h.hub != nil {
		h.hub.Broadcast(msgType, payload)
	}
}

// --- Settings ---

// GetSettings returns the persisted settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	JSON(w, http.StatusOK, h.vault.Host.Settings())
}

// GetStyles returns the stylesheet for the persisted settings.
func (h *Handler) GetStyles(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	css := h.vault.Host.Stylesheet()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, css)
}

// --- Draft ---

// GetDraft returns the current draft.
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	JSON(w, http.StatusOK, h.draft())
}

// AddColor appends a color to the draft palette. The body is optional.
func (h *Handler) AddColor(w http.ResponseWriter, r *http.Request) {
	var req ColorRequest
	if err := decodeOptional(r, &req); err != nil {
		BadRequest(w, "Invalid request body")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	c := h.vault.Controller
	color := c.AddColor()
	applyColorRequest(c.SetColorName, c.SetColorValue, color.ID, req)
	color, _ = c.Color(color.ID)

	h.broadcast(MessageDraftChanged, h.draft())
	JSON(w, http.StatusCreated, color)
}

// UpdateColor edits the name or value of a draft color.
func (h *Handler) UpdateColor(w http.ResponseWriter, r *http.Request) {
	colorID := r.PathValue("id")

	var req ColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid request body")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	c := h.vault.Controller
	if _, ok := c.Color(colorID); !ok {
		Error(w, fcerr.ColorNotFound(colorID))
		return
	}
	applyColorRequest(c.SetColorName, c.SetColorValue, colorID, req)
	color, _ := c.Color(colorID)

	h.broadcast(MessageDraftChanged, h.draft())
	JSON(w, http.StatusOK, color)
}

// RemoveColor drops a color from the draft palette.
func (h *Handler) RemoveColor(w http.ResponseWriter, r *http.Request) {
	colorID := r.PathValue("id")

	h.mu.Lock()
	defer h.mu.Unlock()

	c := h.vault.Controller
	if _, ok := c.Color(colorID); !ok {
		Error(w, fcerr.ColorNotFound(colorID))
		return
	}
	c.RemoveColor(colorID)

	h.broadcast(MessageDraftChanged, h.draft())
	w.WriteHeader(http.StatusNoContent)
}

// SavePalette commits the draft palette.
func (h *Handler) SavePalette(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.vault.Controller.SavePalette()
	// The commit happened even if persisting failed, so clients must refresh
	h.broadcast(MessageSettingsChanged, h.vault.Host.Settings())
	h.broadcast(MessageDraftChanged, h.draft())
	if err != nil {
		h.logger.Error("failed to persist palette", "err", err)
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.draft())
}

// RevertPalette discards the draft palette.
func (h *Handler) RevertPalette(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.vault.Controller.RevertPalette()
	h.broadcast(MessageDraftChanged, h.draft())
	JSON(w, http.StatusOK, h.draft())
}

// --- Options ---

// ToggleOption flips an option and persists it immediately.
func (h *Handler) ToggleOption(w http.ResponseWriter, r *http.Request) {
	key, ok := model.ParseOptionKey(r.PathValue("key"))
	if !ok {
		Error(w, fcerr.InvalidField("option", "unknown option "+r.PathValue("key")))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	value, err := h.vault.Controller.ToggleOption(key)
	h.broadcast(MessageSettingsChanged, h.vault.Host.Settings())
	if err != nil {
		h.logger.Error("failed to persist option", "option", key, "err", err)
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, OptionResponse{Key: key, Value: value})
}

// --- File colors ---

// ListFileColors returns all assignments.
func (h *Handler) ListFileColors(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	JSON(w, http.StatusOK, h.vault.Assignments.List())
}

// AssignFileColor assigns a palette color to a path.
func (h *Handler) AssignFileColor(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid request body")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	assignment, err := h.vault.Assignments.Assign(req.Path, req.Color)
	if err != nil {
		Error(w, err)
		return
	}
	h.broadcast(MessageSettingsChanged, h.vault.Host.Settings())
	JSON(w, http.StatusOK, assignment)
}

// UnassignFileColor removes the assignment for ?path=.
func (h *Handler) UnassignFileColor(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		BadRequest(w, "path query parameter is required")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.vault.Assignments.Unassign(path); err != nil {
		Error(w, err)
		return
	}
	h.broadcast(MessageSettingsChanged, h.vault.Host.Settings())
	w.WriteHeader(http.StatusNoContent)
}

// --- Watcher ---

// OnSettingsChange implements watcher.Subscriber. Settings edited outside
// the server are reloaded and the draft is resynced.
func (h *Handler) OnSettingsChange(change watcher.Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	changed, err := h.vault.Host.Reload()
	if err != nil {
		h.logger.Warn("failed to reload settings", "path", change.Path, "err", err)
		return
	}
	if !changed {
		return
	}

	h.vault.Controller.Resync()
	h.logger.Info("settings reloaded from disk", "path", change.Path)
	h.broadcast(MessageSettingsChanged, h.vault.Host.Settings())
	h.broadcast(MessageDraftChanged, h.draft())
}

// --- Helpers ---

func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func applyColorRequest(setName, setValue func(id, s string), colorID string, req ColorRequest) {
	if req.Name != nil {
		setName(colorID, *req.Name)
	}
	if req.Value != nil {
		setValue(colorID, *req.Value)
	}
}
