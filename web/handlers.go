// ABOUTME: HTTP handlers for the sample listing, the player page, and raw sample files.
// ABOUTME: Every handler reads only the immutable catalog and the samples directory.
package web

import (
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// sampleContentType is fixed: every sample is an HTML page regardless of
// its file extension.
const sampleContentType = "text/html; charset=utf-8"

// basePage fills the fields every page shares.
func (s *Server) basePage() PageData {
	index, _ := s.urls.Path(routeIndex, nil)
	play, _ := s.urls.Path(routePlay, nil)
	static, _ := s.urls.Path(routeStatic, nil)
	return PageData{
		Title:        s.title,
		StaticPrefix: static,
		IndexURL:     index,
		PlayPath:     play,
	}
}

// playURL links to the player page for id.
func (s *Server) playURL(id string) (string, error) {
	p, err := s.urls.Path(routePlay, nil)
	if err != nil {
		return "", err
	}
	u := url.URL{Path: p, RawQuery: url.Values{"sample_id": {id}}.Encode()}
	return u.String(), nil
}

// handleIndex renders the listing page with one option per catalog entry.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := s.basePage()

	entries := s.catalog.Entries()
	data.Samples = make([]SampleView, 0, len(entries))
	for _, e := range entries {
		link, err := s.playURL(e.ID)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		data.Samples = append(data.Samples, SampleView{Entry: e, PlayURL: link})
	}

	if err := s.templates.Render(w, "index.html", data); err != nil {
		s.fail(w, r, err)
	}
}

// handlePlay renders the player page for ?sample_id=. It does not check that
// the sample's file exists; the embedded frame reports that on its own.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("sample_id")
	e, err := s.catalog.Get(id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	sampleURL, err := s.urls.URLFor(r, routeServeSample, Params{"sample_id": e.ID})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	data := s.basePage()
	data.Sample = &SampleView{Entry: e}
	data.SampleURL = sampleURL.String()

	if err := s.templates.Render(w, "player.html", data); err != nil {
		s.fail(w, r, err)
	}
}

// handleServeSample streams the sample's file verbatim as text/html.
func (s *Server) handleServeSample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sample_id")
	// chi routes on RawPath when the path needed escaping.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(id); err == nil {
			id = unescaped
		}
	}

	e, f, err := s.catalog.Open(s.samples, id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", sampleContentType)
	if rs, ok := f.(io.ReadSeeker); ok {
		http.ServeContent(w, r, e.Filename, info.ModTime(), rs)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		s.logger.Printf("web sample copy failed id=%s file=%s err=%v", e.ID, e.Filename, err)
	}
}

// handleHealth returns a JSON health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs server-side failures and writes the error envelope. Catalog
// misses are expected traffic and are not logged beyond the request line.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	he := httpErrorFor(err)
	if he.Status >= http.StatusInternalServerError {
		s.logger.Printf("web handler error method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
	writeError(w, he)
}
