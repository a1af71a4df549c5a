package server

import (
	"bytes"
	"html/template"
	"net/http"
)

type indexData struct {
	SiteURL   string
	Notices   template.HTML
	CheckedAt string
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	notices := bytes.NewBuffer(nil)
	err := RenderNotices(r.Context(), h.register, notices)
	if err != nil {
		h.logger.Error(err.Error())
	}

	data := indexData{
		SiteURL:   h.siteURL,
		Notices:   template.HTML(notices.String()), //nolint:gosec
		CheckedAt: h.timeNow().Format("15:04:05"),
	}

	page := bytes.NewBuffer(nil)
	err = h.indexTemplate.ExecuteTemplate(page, "index.html", data)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed generating webpage: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write(page.Bytes())
	if err != nil {
		h.logger.Warn("writing page: " + err.Error())
	}
}
