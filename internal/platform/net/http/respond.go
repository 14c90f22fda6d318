// Package http is the transport layer: the Router seam, the server and the
// envelope every endpoint answers with.
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "interviewcoach/internal/platform/errors"
	pnet "interviewcoach/internal/platform/net"
)

// Envelope wraps every JSON body. Success fills Data; failure fills Code, Error and maybe Field.
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON encodes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is returned by handlers instead of writing directly.
// A Body that is an error turns into an error envelope with the mapped status.
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 with data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// Error lets err pick the status
func Error(err error) Response { return Response{Body: err} }

// Handle turns a Response-returning func into a net/http handler
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).writeTo(w, r) }
}

func (resp Response) writeTo(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vals := range resp.Header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}

	status := resp.Status
	switch {
	case status == stdhttp.StatusNoContent:
		w.WriteHeader(status)
		return
	case status == 0:
		status = stdhttp.StatusOK
	}

	env := Envelope{RequestID: pnet.RequestID(r.Context()), Data: resp.Body}
	if err, isErr := resp.Body.(error); isErr && err != nil {
		wire := perr.WireFrom(err)
		status = perr.HTTPStatus(err)
		env.Data = nil
		env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
	}
	env.StatusCode, env.Status = status, stdhttp.StatusText(status)
	JSON(w, status, env)
}
