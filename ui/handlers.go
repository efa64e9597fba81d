package ui

import (
	"context"
	"net/http"
	"strings"
)

type pageData struct {
	Folder string
	Status string
	Failed bool
}

// handleIndex renders the folder form
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, "index.html", pageData{Folder: a.config.DefaultFolder})
}

// handleProcess runs a conversion synchronously. The run is detached from the
// request so a dropped connection cannot stop it halfway. Diagnostics go to
// the log; the page only says whether the run finished.
func (a *App) handleProcess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	folder := strings.TrimSpace(r.PostForm.Get("folder"))

	a.mu.Lock()
	_, err := a.converter.Convert(context.WithoutCancel(r.Context()), folder)
	a.mu.Unlock()

	data := pageData{Folder: folder, Status: "Processing finished, see the log for details."}
	if err != nil {
		a.logger.Error("conversion of %s failed: %v", folder, err)
		data.Status = "Processing failed, see the log for details."
		data.Failed = true
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
	}
	a.renderTemplate(w, "index.html", data)
}

// handleClose stops the server after the response is sent
func (a *App) handleClose(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, "closed.html", nil)
	a.once.Do(func() { close(a.closeCh) })
}
