package pkgrouter

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
)

//nolint:contextcheck // the request context is the right one here
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			//nolint:err113,errorlint // this must compare directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "route", matchedRoutePath(r))
			printStackTrace(strings.Split(string(debug.Stack()), "\n"))

			if r.Header.Get("Connection") == "Upgrade" {
				return
			}

			writeJSON(w, errorResponse{
				Message: "Internal server error",
				Error:   map[string]string{"code": "ERROR_CODE_INTERNAL"},
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

// printStackTrace writes only the frames that belong to this module.
func printStackTrace(lines []string) {
	fmt.Fprintln(os.Stderr, "===== ===== START ===== =====")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "/internal/") {
			continue
		}

		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}

		end := strings.IndexByte(line[idx:], ' ')
		if end == -1 {
			end = len(line)
		} else {
			end += idx
		}

		short := line[:end]
		fmt.Fprintln(os.Stderr, "stack trace: ", short[strings.Index(short, "/internal/")+1:])
	}
	fmt.Fprintln(os.Stderr, "===== ===== END ===== =====")
}
