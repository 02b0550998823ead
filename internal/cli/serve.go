package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/engine"
	apperrors "github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/feedback"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/project"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/render"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr   string // listen address
	config string // config file path
}

// newServeCmd creates the serve command, which exposes one project over a
// JSON HTTP API so a browser front end can drive the placement engine.
//
// Routes:
//
//	GET    /api/layout                    full project state
//	GET    /api/layout.svg                rendered floor plan
//	GET    /api/validate                  validation report
//	POST   /api/objects                   place an object
//	PUT    /api/objects/{id}/position     move an object
//	DELETE /api/objects/{id}              remove an object
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve <project>",
		Short: "Serve the layout over an HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:8475", "listen address")
	cmd.Flags().StringVar(&opts.config, "config", defaultConfigPath, "config file path")

	return cmd
}

func runServe(cmd *cobra.Command, projectPath string, opts serveOpts) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := loggerFromContext(ctx)

	sess, err := openSession(ctx, projectPath, opts.config)
	if err != nil {
		return err
	}

	var store *project.SnapshotStore
	if sess.cfg.Autosave.Enabled {
		store, err = project.NewSnapshotStore("", sess.cfg.Autosave.Keep)
		if err != nil {
			return err
		}
	}

	api := &apiServer{sess: sess, store: store, mu: newChanLock()}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/api/layout", api.getLayout)
	r.Get("/api/layout.svg", api.getSVG)
	r.Get("/api/validate", api.getValidation)
	r.Post("/api/objects", api.postObject)
	r.Put("/api/objects/{id}/position", api.putPosition)
	r.Delete("/api/objects/{id}", api.deleteObject)

	srv := &http.Server{
		Addr:         opts.addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving layout", "addr", opts.addr, "project", projectPath)
		errc <- srv.ListenAndServe()
	}()

	if store != nil && sess.cfg.Autosave.IntervalSeconds > 0 {
		go api.autosaveLoop(ctx, sess.cfg.Autosave.Interval(), logger)
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return sess.save()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// apiServer carries the shared session across handlers. The engine itself is
// single-threaded; the mutex serializes HTTP access the way a browser event
// loop would for the in-process engine.
type apiServer struct {
	sess  *editSession
	store *project.SnapshotStore
	mu    chanLock
}

// chanLock is a context-aware mutex. Handlers give up rather than queue
// forever when a request times out while waiting. The channel must be made
// before the first lock; use newChanLock.
type chanLock struct {
	ch chan struct{}
}

func newChanLock() chanLock {
	return chanLock{ch: make(chan struct{}, 1)}
}

func (l *chanLock) lock(ctx context.Context) error {
	select {
	case l.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *chanLock) unlock() { <-l.ch }

func (s *apiServer) autosaveLoop(ctx context.Context, interval time.Duration, logger *log.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.mu.lock(ctx); err != nil {
				return
			}
			s.sess.project.SyncObjects(s.sess.engine.Objects())
			_, err := s.store.Snapshot(s.sess.project)
			s.mu.unlock()
			if err != nil {
				logger.Warn("autosave failed", "error", err)
			}
		}
	}
}

// placeRequest is the POST /api/objects body.
type placeRequest struct {
	Type       string          `json:"type"`
	Position   geometry.Point  `json:"position"`
	Properties json.RawMessage `json:"properties"`
}

// positionRequest is the PUT /api/objects/{id}/position body.
type positionRequest struct {
	Position geometry.Point `json:"position"`
}

func (s *apiServer) getLayout(w http.ResponseWriter, r *http.Request) {
	if err := s.mu.lock(r.Context()); err != nil {
		httpError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer s.mu.unlock()

	s.sess.project.SyncObjects(s.sess.engine.Objects())
	writeJSON(w, http.StatusOK, s.sess.project)
}

func (s *apiServer) getSVG(w http.ResponseWriter, r *http.Request) {
	if err := s.mu.lock(r.Context()); err != nil {
		httpError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer s.mu.unlock()

	out := render.RenderSVG(s.sess.project.Venue, s.sess.engine.Objects(),
		render.WithMarginGuide(s.sess.engine.Constraints()))
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *apiServer) getValidation(w http.ResponseWriter, r *http.Request) {
	if err := s.mu.lock(r.Context()); err != nil {
		httpError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer s.mu.unlock()

	checks, err := s.sess.engine.ValidateAll()
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, checks)
}

func (s *apiServer) postObject(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}
	size, err := sizeParamsFromJSON(req.Type, req.Properties)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.mu.lock(r.Context()); err != nil {
		httpError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer s.mu.unlock()

	res, err := s.sess.engine.PlaceObject(engine.PlacementRequest{Size: size}, req.Position)
	if err != nil {
		httpError(w, statusForError(err), err)
		return
	}
	if res.Placed == nil {
		writeJSON(w, http.StatusUnprocessableEntity, placementRejection(res.Feedback, res.Check))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"object":   res.Placed,
		"feedback": res.Feedback,
	})
}

func (s *apiServer) putPosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.mu.lock(r.Context()); err != nil {
		httpError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer s.mu.unlock()

	eng := s.sess.engine
	if err := eng.StartDrag(id); err != nil {
		httpError(w, statusForError(err), err)
		return
	}
	if _, err := eng.MoveDrag(req.Position); err != nil {
		_ = eng.CancelDrag()
		httpError(w, statusForError(err), err)
		return
	}
	res, err := eng.EndDrag()
	if err != nil {
		httpError(w, statusForError(err), err)
		return
	}

	status := http.StatusOK
	if !res.Committed {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func (s *apiServer) deleteObject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.mu.lock(r.Context()); err != nil {
		httpError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer s.mu.unlock()

	if err := s.sess.engine.Objects().Remove(id); err != nil {
		httpError(w, statusForError(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func placementRejection(fb feedback.Feedback, check any) map[string]any {
	return map[string]any{"feedback": fb, "check": check}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": apperrors.UserMessage(err),
		"code":  string(apperrors.GetCode(err)),
	})
}

// statusForError maps engine error codes onto HTTP status codes.
func statusForError(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeObjectNotFound, apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeDragActive:
		return http.StatusConflict
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidSize, apperrors.ErrCodeInvalidID,
		apperrors.ErrCodeUnknownKind, apperrors.ErrCodeNoDrag:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sizeParamsFromJSON decodes the wire shape of an object's size parameters
// by running them through the canonical object codec.
func sizeParamsFromJSON(typ string, props json.RawMessage) (object.SizeParams, error) {
	if len(props) == 0 {
		props = json.RawMessage(`{}`)
	}
	record := map[string]json.RawMessage{
		"id":         json.RawMessage(`"incoming"`),
		"type":       json.RawMessage(fmt.Sprintf("%q", typ)),
		"position":   json.RawMessage(`{"x":0,"y":0}`),
		"properties": props,
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var o object.Object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, err
	}
	if err := validateSizeInput(o.Size); err != nil {
		return nil, err
	}
	return o.Size, nil
}
