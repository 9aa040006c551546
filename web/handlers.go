package web

import (
	"bytes"
	"fmt"
	"html"
	"image/png"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/nfnt/resize"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-sza/gifenc"
	"badc0de.net/pkg/go-sza/sza"
)

type Handler struct {
	store *Store
}

// NewHandler constructs a web handler serving the animations in the
// passed store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// scaledAnimation applies the optional ?scale= query parameter. A
// missing parameter or a scale of exactly 1 returns the animation as is.
func scaledAnimation(a *sza.Animation, r *http.Request) (*sza.Animation, error) {
	q := r.URL.Query().Get("scale")
	if q == "" {
		return a, nil
	}
	factor, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return nil, fmt.Errorf("scale not a number: %q", q)
	}
	if factor == 1 {
		return a, nil
	}
	return a.Scaled(factor)
}

func (h *Handler) gifHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	a, ok := h.store.Animation(name)
	if !ok {
		http.Error(w, "no such animation", http.StatusNotFound)
		return
	}

	a, err := scaledAnimation(a, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	generation := 1 // bump if the way we generate it changes
	mime := "image/gif"
	etag := fmt.Sprintf(`W/"anim:%d:%s:%s:%s"`, generation, name, r.URL.Query().Get("scale"), mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	if err := gifenc.Encode(w, a); err != nil {
		glog.Errorf("error encoding animation %q as gif: %v", name, err)
	}
}

func (h *Handler) frameHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]
	idx, err := strconv.Atoi(vars["idx"])
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	a, ok := h.store.Animation(name)
	if !ok {
		http.Error(w, "no such animation", http.StatusNotFound)
		return
	}
	if idx < 0 || idx >= a.FrameCount() {
		http.Error(w, "no such frame", http.StatusNotFound)
		return
	}

	a, err = scaledAnimation(a, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, a.Frame(idx).Image()); err != nil {
		glog.Errorf("error encoding frame %d of %q: %v", idx, name, err)
	}
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "<!doctype html><title>animations</title><h1>animations</h1><ul>\n")
	for _, name := range h.store.Names() {
		a, _ := h.store.Animation(name)

		// Inline the first frame as a small data-URL thumbnail, so the
		// index needs no extra roundtrips.
		thumb := resize.Thumbnail(64, 64, a.Frame(0).Image(), resize.Lanczos3)
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, thumb); err != nil {
			glog.Errorf("error encoding thumbnail for %q: %v", name, err)
			continue
		}
		dataURL := dataurl.New(buf.Bytes(), "image/png")

		fmt.Fprintf(w, `<li><img src=%q> <a href="/anim/%s.gif">%s</a> (%dx%d, %d frames)</li>`+"\n",
			dataURL.String(), name, html.EscapeString(name), a.Width(), a.Height(), a.FrameCount())
	}
	fmt.Fprintf(w, "</ul>\n")
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/anim/{name}.gif", h.gifHandler)
	r.HandleFunc("/anim/{name}/{idx:[0-9]+}.png", h.frameHandler)
}
