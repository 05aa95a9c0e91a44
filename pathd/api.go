package pathd

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/katalvlaran/shortpath/internal/lg"
)

type decorator func(apiHandler) apiHandler

type apiHandler func(http.ResponseWriter, *http.Request, httprouter.Params) (interface{}, error)

type apiErr struct {
	Code int
	Text string
}

func (e apiErr) Error() string {
	return e.Text
}

func errCode(err error) int {
	if e, ok := err.(apiErr); ok {
		return e.Code
	}
	return http.StatusInternalServerError
}

func plainText(f apiHandler) apiHandler {
	return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
		code := 200
		data, err := f(w, req, ps)
		if err != nil {
			code = errCode(err)
			data = err.Error()
		}
		switch d := data.(type) {
		case string:
			w.WriteHeader(code)
			io.WriteString(w, d)
		case []byte:
			w.WriteHeader(code)
			w.Write(d)
		default:
			panic(fmt.Sprintf("unknown response type %T", data))
		}
		return nil, nil
	}
}

func jsonEnvelope(f apiHandler) apiHandler {
	return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
		data, err := f(w, req, ps)
		if err != nil {
			respond(w, errCode(err), err.Error(), nil)
			return nil, nil
		}
		respond(w, 200, "OK", data)
		return nil, nil
	}
}

func respond(w http.ResponseWriter, statusCode int, statusTxt string, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	response, err := json.Marshal(struct {
		StatusCode int         `json:"status_code"`
		StatusTxt  string      `json:"status_txt"`
		Data       interface{} `json:"data"`
	}{
		statusCode,
		statusTxt,
		data,
	})
	if err != nil {
		statusCode = 500
		response = []byte(fmt.Sprintf(`{"status_code":500, "status_txt":"%s", "data":null}`, err))
	}

	w.WriteHeader(statusCode)
	w.Write(response)
}

func decorate(f apiHandler, ds ...decorator) httprouter.Handle {
	decorated := f
	for _, d := range ds {
		decorated = d(decorated)
	}
	return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		decorated(w, req, ps)
	}
}

func logRequests(l lg.Logger) decorator {
	return func(f apiHandler) apiHandler {
		return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
			start := time.Now()
			response, err := f(w, req, ps)
			elapsed := time.Since(start)
			status := 200
			if err != nil {
				status = errCode(err)
			}
			l.Output(2, fmt.Sprintf("%d %s %s (%s) %s",
				status, req.Method, req.URL.RequestURI(), req.RemoteAddr, elapsed))
			return response, err
		}
	}
}

func logPanicHandler(l lg.Logger) func(w http.ResponseWriter, req *http.Request, p interface{}) {
	return func(w http.ResponseWriter, req *http.Request, p interface{}) {
		l.Output(2, fmt.Sprintf("ERROR: panic in HTTP handler - %s", p))
		decorate(func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
			return nil, apiErr{500, "INTERNAL_ERROR"}
		}, logRequests(l), jsonEnvelope)(w, req, nil)
	}
}

func logNotFoundHandler(l lg.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		decorate(func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
			return nil, apiErr{404, "NOT_FOUND"}
		}, logRequests(l), jsonEnvelope)(w, req, nil)
	})
}

func logMethodNotAllowedHandler(l lg.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		decorate(func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
			return nil, apiErr{405, "METHOD_NOT_ALLOWED"}
		}, logRequests(l), jsonEnvelope)(w, req, nil)
	})
}

func serve(listener net.Listener, handler http.Handler, l lg.Logger) {
	l.Output(2, fmt.Sprintf("HTTP: listening on %s", listener.Addr()))

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	err := server.Serve(listener)
	// theres no direct way to detect this error because it is not exposed
	if err != nil && !strings.Contains(err.Error(), "use of closed network connection") {
		l.Output(2, fmt.Sprintf("ERROR: http.Serve() - %s", err))
	}

	l.Output(2, fmt.Sprintf("HTTP: closing %s", listener.Addr()))
}
