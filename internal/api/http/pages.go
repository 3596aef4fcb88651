package http

import "html/template"

// Minimal server-rendered shells; the real UI assets live outside this
// service and replace these in deployment.
var (
	loginPage = template.Must(template.New("login").Parse(`<!doctype html>
<html><head><title>Excise Portal - Login</title></head><body>
<h1>Excise &amp; Taxation Portal</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="POST" action="/login">
  <input name="username" placeholder="Username" required>
  <input name="password" type="password" placeholder="Password" required>
  <button type="submit">Login</button>
</form>
<p><a href="/verify">Verify a vehicle</a></p>
</body></html>`))

	portalPage = template.Must(template.New("portal").Parse(`<!doctype html>
<html><head><title>Excise Portal</title></head><body>
<h1>{{.Title}}</h1>
<p>Logged in as {{.Username}} ({{.Role}}). <a href="/logout">Logout</a></p>
</body></html>`))

	verifyPage = template.Must(template.New("verify").Parse(`<!doctype html>
<html><head><title>Verify Vehicle</title></head><body>
<h1>Vehicle Verification</h1>
<p>Query GET /api/verify_vehicle/{cnic-or-vehicle-id}</p>
</body></html>`))
)
