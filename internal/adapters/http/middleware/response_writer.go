// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs the chain in this order:
//
//	Recovery → RequestID → CorrelationID → Member → OpenTelemetry → Logging → Timeout → Handler
//
// Timeout applies only to the request/response routes. The event feed is
// upgraded to a websocket and runs outside it.
package middleware

import (
	"bufio"
	"net"
	"net/http"
)

// responseWriter records the status code and byte count for recovery, otel,
// and logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code and forwards it. Later calls are
// ignored.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Hijack hands the connection to a websocket upgrade. The upgrade writes its
// 101 response directly to the conn, so it is recorded here.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, brw, err := http.NewResponseController(rw.ResponseWriter).Hijack()
	if err != nil {
		return nil, nil, err
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.headerWritten = true
	return conn, brw, nil
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
