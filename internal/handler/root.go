package handler

import "net/http"

const banner = `
    <h1>Habesha Dating API 👋</h1>
    <p>POST <code>/api/auth/register</code> &nbsp; <code>{email, password}</code></p>
    <p>POST <code>/api/auth/login</code> &nbsp; <code>{email, password}</code></p>
    <p>POST <code>/api/profile</code> &nbsp; (JWT required)</p>
`

// Root serves a human-readable banner listing the available endpoints.
func Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(banner))
}
