// net.go — httpGet/httpPost over "net/http", grounded on the teacher's
// builtin_io_net.go which wraps the same package for the same purpose
// rather than a third-party HTTP client (none of the example repos
// import one).
package natives

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/imabd645/EZ-langauge"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

func installNet(ip *ez.Interpreter) {
	ip.RegisterNative("httpGet", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		url, err := wantString(a[0], l, "httpGet")
		if err != nil {
			return ez.Nil, err
		}
		resp, gerr := httpClient.Get(url)
		if gerr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: gerr.Error(), Wrapped: gerr}
		}
		defer resp.Body.Close()
		body, rerr := io.ReadAll(resp.Body)
		if rerr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: rerr.Error(), Wrapped: rerr}
		}
		return ez.DictVal(map[string]ez.Value{
			"status": ez.NumberVal(float64(resp.StatusCode)),
			"body":   ez.StringVal(string(body)),
		}), nil
	})
	ip.RegisterNative("httpPost", 3, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		url, e1 := wantString(a[0], l, "httpPost")
		contentType, e2 := wantString(a[1], l, "httpPost")
		body, e3 := wantString(a[2], l, "httpPost")
		if e1 != nil || e2 != nil || e3 != nil {
			return ez.Nil, firstErr(e1, e2, e3)
		}
		resp, perr := httpClient.Post(url, contentType, strings.NewReader(body))
		if perr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: perr.Error(), Wrapped: perr}
		}
		defer resp.Body.Close()
		respBody, rerr := io.ReadAll(resp.Body)
		if rerr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: rerr.Error(), Wrapped: rerr}
		}
		return ez.DictVal(map[string]ez.Value{
			"status": ez.NumberVal(float64(resp.StatusCode)),
			"body":   ez.StringVal(string(respBody)),
		}), nil
	})
	ip.RegisterNative("httpServe", 2, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		port, err := wantNumber(a[0], l, "httpServe")
		if err != nil {
			return ez.Nil, err
		}
		handler := a[1]
		if !handler.Callable() {
			return ez.Nil, typeErr(l, "httpServe() requires a function as its second argument")
		}

		var mu sync.Mutex // serializes handler calls into the interpreter
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			req := ez.DictVal(map[string]ez.Value{
				"method": ez.StringVal(r.Method),
				"path":   ez.StringVal(r.URL.Path),
				"body":   ez.StringVal(string(body)),
			})
			mu.Lock()
			result, cerr := ip.Call(handler, []ez.Value{req}, l)
			mu.Unlock()
			if cerr != nil {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, cerr.Error())
				return
			}
			if result.Tag == ez.VDict {
				d := result.Dict().Entries
				status := http.StatusOK
				if sv, ok := d["status"]; ok && sv.Tag == ez.VNumber {
					status = int(sv.Number())
				}
				w.WriteHeader(status)
				if bv, ok := d["body"]; ok {
					fmt.Fprint(w, ez.ToDisplayString(bv))
				}
				return
			}
			fmt.Fprint(w, ez.ToDisplayString(result))
		})

		// httpServe blocks the calling script's goroutine for the life of
		// the server. net/http serves each request on its own goroutine,
		// but mu lets only one request at a time run the EZ handler, so
		// the script still executes single-threaded (spec.md §5).
		addr := fmt.Sprintf(":%d", int(port))
		if serr := http.ListenAndServe(addr, mux); serr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: serr.Error(), Wrapped: serr}
		}
		return ez.Nil, nil
	})
}
