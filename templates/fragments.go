package templates

import (
	"html/template"
	"strings"

	"anonbox/models"
)

// The send interaction swaps fragments into #send-area: the composing form,
// the sent confirmation, or the form again with an inline error. They are
// rendered to strings because handlers return them as htmx responses and the
// websocket hub pushes them as frames.

var (
	composeFormTmpl = template.Must(template.New("compose").Parse(`
<form hx-post="/to/{{.Username}}/send" hx-target="#send-area" hx-swap="innerHTML" hx-indicator="#sending">
	{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
	<input id="message-input" name="content" type="text" required minlength="1" maxlength="200"
		placeholder="Send an anonymous message.." autocomplete="off" value="{{.Content}}">
	<button type="submit" class="send-btn">Send</button>
	<span id="sending" class="loader htmx-indicator"></span>
</form>`))

	sentTmpl = template.Must(template.New("sent").Parse(`
<div hx-swap-oob="beforeend:#echo"><div class="chat-p send">{{.Echo}}</div></div>
<div class="sent">
	<p>Anonymous message sent!</p>
	<div>
		<button hx-get="/to/{{.Username}}/compose" hx-target="#send-area" hx-swap="innerHTML">Send again</button>
		<span class="muted">&bull;</span>
		<a href="/create">Create your link</a>
	</div>
</div>`))

	inboxMessageTmpl = template.Must(template.New("inboxmsg").Parse(`
<div class="message" id="m{{.ID}}">
	<p class="muted">{{.Prompt}}</p>
	<p class="content">{{.Content}}</p>
	<p class="when">{{.When}}</p>
</div>`))
)

type composeData struct {
	Username string
	Content  string
	Error    string
}

type sentData struct {
	Username string
	Echo     template.HTML
}

type inboxMessageData struct {
	ID      string
	Prompt  string
	Content template.HTML
	When    string
}

func render(t *template.Template, data interface{}) string {
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		// Templates are static and data is plain strings; a failure here is
		// a programming error.
		panic(err)
	}
	return buf.String()
}

// ComposeForm renders the composing state. content preserves what the
// visitor typed when the form is re-rendered after a failed send.
func ComposeForm(username, content, errorMsg string) string {
	return render(composeFormTmpl, composeData{Username: username, Content: content, Error: errorMsg})
}

// SentConfirmation renders the sent state plus an out-of-band echo of the
// delivered content into the chat area.
func SentConfirmation(username, content string) string {
	return render(sentTmpl, sentData{Username: username, Echo: FormatContent(content)})
}

// InboxMessage renders one received message for the inbox list and the
// websocket push.
func InboxMessage(m models.Message) string {
	return render(inboxMessageTmpl, inboxMessageData{
		ID:      m.ID,
		Prompt:  m.ReceiverMsg,
		Content: FormatContent(m.Content),
		When:    m.CreatedAt.Format("Jan 2, 2006 15:04"),
	})
}
