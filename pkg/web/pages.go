// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"

	"github.com/canonical/club-access/internal/http/types"
)

// pagesHandler serves the dashboard build from root, falling back to index.html
// for client side routes. Without a root it only acknowledges the page load.
func pagesHandler(root string) http.Handler {
	if root == "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			types.WriteJSON(w, http.StatusOK, map[string]string{"path": r.URL.Path}, "render")
		})
	}

	files := os.DirFS(root)
	static := http.FileServerFS(files)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean(r.URL.Path)[1:]

		if name != "" {
			if _, err := fs.Stat(files, name); err == nil {
				static.ServeHTTP(w, r)
				return
			} else if !errors.Is(err, fs.ErrNotExist) {
				types.WriteError(w, http.StatusInternalServerError, "failed to read page")
				return
			}
		}

		http.ServeFileFS(w, r, files, "index.html")
	})
}
