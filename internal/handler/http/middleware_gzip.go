package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Gzip writers and readers are pooled; note text and export documents
// compress on every sync round.
var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip handles compression on both directions of a request: a
// gzip-encoded body is unwrapped before the handlers see it, and the
// response is compressed when the client accepts gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaders.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaders.Put(zr)
				http.Error(w, "malformed gzip body", http.StatusBadRequest)
				return
			}

			r.Body = &pooledBody{Reader: zr, release: func() {
				zr.Close()
				gzipReaders.Put(zr)
			}}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, r)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

// pooledBody hands the gzip reader back to the pool when the request body
// is closed.
type pooledBody struct {
	io.Reader
	release func()
}

func (b *pooledBody) Close() error {
	if b.release != nil {
		b.release()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}
