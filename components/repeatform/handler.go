package repeatform

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-formrepeat/pkg/blueprint"
	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type createSessionRequest struct {
	// Markup is an HTML fragment holding one literal instance of the
	// fields to replicate. Exactly one of Markup and Blueprint is set.
	Markup string `json:"markup,omitempty"`
	// Blueprint is a YAML or JSON blueprint document.
	Blueprint string `json:"blueprint,omitempty"`
	// Seed overrides the component's default prefix seed.
	Seed string `json:"seed,omitempty"`
	// AddLabel overrides the add affordance's button text.
	AddLabel string `json:"addLabel,omitempty"`
}

type sessionResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token,omitempty"`
	Instances int    `json:"instances"`
	Markup    string `json:"markup"`
}

type instanceResponse struct {
	Index     int    `json:"index"`
	Instances int    `json:"instances"`
	Markup    string `json:"markup"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handlers bundles the endpoint implementations around one session store.
type handlers struct {
	opts  Options
	store *store
}

func newHandlers(opts Options) *handlers {
	return &handlers{opts: opts, store: newStore(opts.MaxSessions)}
}

func (h *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	if !h.admit(w, r) {
		return
	}

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("repeatform: decode request: %w", err)})
		return
	}

	container, fns, err := h.resolveContainer(req)
	if err != nil {
		writeError(w, err)
		return
	}

	form, err := replicate.New(container, fns...)
	if err != nil {
		writeError(w, StatusError{Code: http.StatusUnprocessableEntity, Err: err})
		return
	}

	sess, err := h.store.create(form)
	if err != nil {
		writeError(w, StatusError{Code: http.StatusServiceUnavailable, Err: err})
		return
	}

	markup, err := dom.RenderString(form.Container())
	if err != nil {
		h.store.remove(sess.id)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		ID:        sess.id,
		Token:     form.Binding().Token(),
		Instances: len(form.Instances()),
		Markup:    markup,
	})
}

func (h *handlers) resolveContainer(req createSessionRequest) (*dom.Node, []replicate.OptionFn, error) {
	seed := strings.TrimSpace(req.Seed)
	if seed == "" {
		seed = h.opts.DefaultSeed
	}

	var fns []replicate.OptionFn
	if seed != "" {
		fns = append(fns, replicate.WithPrefixSeed(seed))
	}
	if req.AddLabel != "" {
		fns = append(fns, replicate.WithAddLabel(req.AddLabel))
	}

	hasMarkup := strings.TrimSpace(req.Markup) != ""
	hasBlueprint := strings.TrimSpace(req.Blueprint) != ""

	switch {
	case hasMarkup && hasBlueprint:
		return nil, nil, StatusError{Code: http.StatusBadRequest, Err: errors.New("repeatform: markup and blueprint are mutually exclusive")}
	case hasMarkup:
		// Wire input is untrusted; strip everything outside the form
		// vocabulary before it becomes a template.
		cleaned := dom.SanitizeFragment(req.Markup)
		if cleaned == "" {
			return nil, nil, StatusError{Code: http.StatusUnprocessableEntity, Err: errors.New("repeatform: markup is empty after sanitization")}
		}
		nodes, err := dom.ParseFragment(cleaned)
		if err != nil {
			return nil, nil, StatusError{Code: http.StatusUnprocessableEntity, Err: err}
		}
		container := dom.NewElement("div")
		for _, n := range nodes {
			container.AppendChild(n)
		}
		return container, fns, nil
	case hasBlueprint:
		bp, err := blueprint.Parse([]byte(req.Blueprint))
		if err != nil {
			return nil, nil, StatusError{Code: http.StatusUnprocessableEntity, Err: err}
		}
		// Blueprint settings apply first so explicit request fields win.
		fns = append(bp.FormOptions(), fns...)
		return bp.BuildContainer(), fns, nil
	default:
		return nil, nil, StatusError{Code: http.StatusBadRequest, Err: errors.New("repeatform: markup or blueprint is required")}
	}
}

func (h *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	if !h.admit(w, r) {
		return
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	markup, err := dom.RenderString(sess.form.Container())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		ID:        sess.id,
		Instances: len(sess.form.Instances()),
		Markup:    markup,
	})
}

func (h *handlers) addInstance(w http.ResponseWriter, r *http.Request) {
	if !h.admit(w, r) {
		return
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if count := len(sess.form.Instances()); h.opts.MaxInstances > 0 && count >= h.opts.MaxInstances {
		writeError(w, StatusError{Code: http.StatusConflict, Err: fmt.Errorf("repeatform: instance limit %d reached", h.opts.MaxInstances)})
		return
	}

	index := sess.form.Template().IterationCount()
	instance, err := sess.form.Add()
	if err != nil {
		if errors.Is(err, replicate.ErrBindingRevoked) {
			writeError(w, StatusError{Code: http.StatusConflict, Err: err})
			return
		}
		writeError(w, err)
		return
	}

	markup, err := dom.RenderString(instance)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, instanceResponse{
		Index:     index,
		Instances: len(sess.form.Instances()),
		Markup:    markup,
	})
}

func (h *handlers) revokeBinding(w http.ResponseWriter, r *http.Request) {
	if !h.admit(w, r) {
		return
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.form.Binding().Revoke()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) session(w http.ResponseWriter, r *http.Request) (*session, bool) {
	id := r.PathValue("id")
	sess, ok := h.store.get(id)
	if !ok {
		writeError(w, StatusError{Code: http.StatusNotFound, Err: fmt.Errorf("repeatform: session %q not found", id)})
		return nil, false
	}
	return sess, true
}

// admit applies the configured guard; a guard error maps to its HTTP status
// when it carries one, 403 otherwise.
func (h *handlers) admit(w http.ResponseWriter, r *http.Request) bool {
	if h.opts.Guard == nil {
		return true
	}
	err := h.opts.Guard(r)
	if err == nil {
		return true
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		if c := httpErr.StatusCode(); c > 0 {
			code = c
		}
	}
	writeJSON(w, code, errorResponse{Error: http.StatusText(code)})
	return false
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		if c := httpErr.StatusCode(); c > 0 {
			code = c
		}
	}
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}
