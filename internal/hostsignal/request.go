package hostsignal

import (
	"net/http"
	"strings"
)

// ClientHintHeader carries the browser's prefers-color-scheme value.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// FromRequest reports whether the request's client hint asks for dark
// presentation. A missing or unrecognized hint counts as light.
func FromRequest(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(ClientHintHeader)), `"`)
	return strings.EqualFold(v, "dark")
}

// AdvertiseHints asks supporting browsers to send the color-scheme client
// hint on subsequent requests, and retry the first one with it.
func AdvertiseHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Accept-CH", ClientHintHeader)
		h.Set("Critical-CH", ClientHintHeader)
		h.Add("Vary", ClientHintHeader)
		next.ServeHTTP(w, r)
	})
}
