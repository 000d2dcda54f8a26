package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"anonbox/models"
)

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>{{.Title}}</title>
	<link rel="stylesheet" href="/anonbox.css">
	<script src="https://unpkg.com/htmx.org@1.9.12"></script>
	<script>
		// htmx leaves the DOM alone on non-2xx responses; the send flow
		// returns its inline-error fragments with 4xx/5xx, so those must
		// still swap.
		document.addEventListener("htmx:beforeSwap", function (ev) {
			var status = ev.detail.xhr.status;
			if (status === 400 || status === 500) {
				ev.detail.shouldSwap = true;
				ev.detail.isError = false;
			}
		});
	</script>
</head>
<body>
{{template "body" .}}
</body>
</html>`

var (
	greeterTmpl = template.Must(template.New("greeter").Parse(layoutHTML + `
{{define "body"}}
<section class="card">
	<h1>anonbox</h1>
	{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
	{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
	<form method="POST" action="/auth">
		<input name="username" placeholder="Username" autocomplete="username" required>
		<input name="password" type="password" placeholder="Password" autocomplete="current-password" required>
		<button type="submit">Log in</button>
	</form>
	<p><a href="/create">Create your link</a></p>
</section>
{{end}}`))

	createTmpl = template.Must(template.New("create").Parse(layoutHTML + `
{{define "body"}}
<section class="card">
	<h1>Create your link</h1>
	{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
	<form method="POST" action="/signup">
		<input name="username" placeholder="Username" autocomplete="username" required>
		<input name="password" type="password" placeholder="Password" autocomplete="new-password" required>
		<input name="message" placeholder="Your prompt (optional)" maxlength="200">
		<button type="submit">Create</button>
	</form>
</section>
{{end}}`))

	sendToTmpl = template.Must(template.New("sendto").Parse(layoutHTML + `
{{define "body"}}
<section class="card">
	<div class="card-head">
		<p><span class="muted">To:</span> {{.Username}}</p>
	</div>
	<div class="chat">
		<div class="chat-p receive">{{.Prompt}}</div>
		<div id="echo"></div>
	</div>
	<div id="send-area">{{.Form}}</div>
</section>
{{end}}`))

	notFoundTmpl = template.Must(template.New("notfound").Parse(layoutHTML + `
{{define "body"}}
<section class="card">
	<h1>Are you lost?</h1>
</section>
{{end}}`))

	inboxTmpl = template.Must(template.New("inbox").Parse(layoutHTML + `
{{define "body"}}
<section class="card">
	<div class="card-head">
		<p>@{{.Username}}</p>
		<form method="POST" action="/logout"><button type="submit">Log out</button></form>
	</div>
	<p class="muted">Share your link: /to/{{.Username}}</p>
	<div id="messages">
		{{range .Messages}}{{.}}{{end}}
	</div>
</section>
<script>
	(function () {
		var proto = location.protocol === "https:" ? "wss://" : "ws://";
		var sock = new WebSocket(proto + location.host + "/ws/inbox");
		sock.onmessage = function (ev) {
			var box = document.getElementById("messages");
			box.insertAdjacentHTML("afterbegin", ev.data);
		};
	})();
</script>
{{end}}`))
)

type greeterData struct {
	Title  string
	Error  string
	Notice string
}

type sendToData struct {
	Title    string
	Username string
	Prompt   string
	Form     template.HTML
}

type inboxData struct {
	Title    string
	Username string
	Messages []template.HTML
}

func component(t *template.Template, data interface{}) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.Execute(w, data)
	})
}

func Greeter(errorMsg, notice string) templ.Component {
	return component(greeterTmpl, greeterData{Title: "anonbox", Error: errorMsg, Notice: notice})
}

func Create(errorMsg string) templ.Component {
	return component(createTmpl, greeterData{Title: "Create your link", Error: errorMsg})
}

func SendTo(profile models.Profile) templ.Component {
	return component(sendToTmpl, sendToData{
		Title:    "Send anonymous messages to " + profile.Username + "!",
		Username: profile.Username,
		Prompt:   profile.Message,
		Form:     template.HTML(ComposeForm(profile.Username, "", "")),
	})
}

func NotFound() templ.Component {
	return component(notFoundTmpl, greeterData{Title: "404 - User not found"})
}

func Inbox(username string, messages []models.Message) templ.Component {
	rendered := lo.Map(messages, func(m models.Message, _ int) template.HTML {
		return template.HTML(InboxMessage(m))
	})
	return component(inboxTmpl, inboxData{
		Title:    "Your messages",
		Username: username,
		Messages: rendered,
	})
}
