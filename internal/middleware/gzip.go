package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// GzipReader transparently decompresses gzipped request bodies.
func GzipReader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Encoding") != "gzip" {
			next.ServeHTTP(w, r)
			return
		}

		gzReader, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "Failed to read gzipped request", http.StatusBadRequest)
			return
		}
		defer gzReader.Close()

		r.Body = io.NopCloser(gzReader)
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// GzipWriter compresses JSON, HTML and plain-text responses when the client
// accepts gzip. The response is buffered so the Content-Type set by the
// handler decides whether compression applies.
func GzipWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		buf := &bufferingWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(buf, r)

		contentType := buf.Header().Get("Content-Type")
		if !compressible(contentType) {
			buf.flushTo(w)
			return
		}

		gz, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
		if err != nil {
			buf.flushTo(w)
			return
		}
		defer gz.Close()

		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(buf.statusCode)
		gz.Write(buf.body)
	})
}

func compressible(contentType string) bool {
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "text/plain")
}

// bufferingWriter captures status and body without writing them through.
type bufferingWriter struct {
	http.ResponseWriter
	statusCode int
	body       []byte
}

func (w *bufferingWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
}

func (w *bufferingWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return len(b), nil
}

func (w *bufferingWriter) flushTo(dst http.ResponseWriter) {
	dst.WriteHeader(w.statusCode)
	dst.Write(w.body)
}
