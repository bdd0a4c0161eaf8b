package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"picwall/internal/assets"
	"picwall/internal/logging"
)

// Handlers serves the frozen gallery snapshot. Every handler only reads
// from the snapshot, so no request-path locking exists anywhere.
type Handlers struct {
	snapshot  *assets.Snapshot
	indexTmpl *template.Template
	startTime time.Time
}

// New creates the HTTP handlers for a frozen gallery snapshot.
func New(snapshot *assets.Snapshot) *Handlers {
	return &Handlers{
		snapshot:  snapshot,
		indexTmpl: template.Must(template.New("index").Parse(indexTemplate)),
		startTime: time.Now(),
	}
}

// GetAsset serves one asset looked up by request path: an original image,
// a preview, or the archive. Unknown paths get a plain 404.
func (h *Handlers) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, ok := h.snapshot.Get(r.URL.Path)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", asset.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(asset.Data)))
	// The table is immutable for the process lifetime, so clients may
	// cache aggressively.
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(asset.Data); err != nil {
		logging.Debug("Writing asset %s: %v", r.URL.Path, err)
	}
}

// indexData is the view model for the listing page.
type indexData struct {
	Entries    []assets.Entry
	ArchiveKey string
	Count      int
}

// Index renders the gallery listing page: one preview per image in scan
// order, each linking to its original, plus the archive download link.
func (h *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	data := indexData{
		Entries:    h.snapshot.Entries(),
		ArchiveKey: assets.ArchiveKey,
		Count:      len(h.snapshot.Entries()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.indexTmpl.Execute(w, data); err != nil {
		logging.Error("Rendering index: %v", err)
	}
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>picwall</title>
<style>
  body { margin: 0; background: #111; color: #eee; font-family: sans-serif; }
  header { padding: 1rem 2rem; display: flex; justify-content: space-between; align-items: baseline; }
  header a { color: #8ab4f8; text-decoration: none; }
  .grid { display: flex; flex-wrap: wrap; gap: 8px; padding: 0 2rem 2rem; }
  .grid a { display: block; line-height: 0; }
  .grid img { max-height: 300px; border-radius: 4px; }
  figcaption { color: #999; font-size: 0.8rem; line-height: 1.4; }
</style>
</head>
<body>
<header>
  <h1>picwall ({{.Count}})</h1>
  <a href="{{.ArchiveKey}}" download>download all</a>
</header>
<div class="grid">
{{range .Entries}}  <figure>
    <a href="{{.FullKey}}"><img src="{{.PreviewKey}}" alt="{{.DisplayName}}" loading="lazy"></a>
    <figcaption>{{.DisplayName}}</figcaption>
  </figure>
{{end}}</div>
</body>
</html>
`
