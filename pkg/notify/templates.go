package notify

import (
	"bytes"
	"html/template"

	"github.com/Kxngreece/Healstep-API/pkg/models"
)

const (
	AlertSubject    = "Healstep Alert System Notice"
	FeedbackSubject = "Healstep Feedback Received"
)

var alertTemplate = template.Must(template.New("alert").Parse(`<html>
<body>
<p>
<br> URGENT!!!
<br> Patient with Brace ID :{{.BraceID}} is currently experiencing unusual activity. PLEASE check their status immediately.
<br> Knee {{.Type}} of rotation has been breached.
<br> Alert Code: {{.Message}}
</p>
</body>
</html>
`))

var feedbackTemplate = template.Must(template.New("feedback").Parse(`<html>
<body>
<p>
<br> New feedback from Brace ID :{{.BraceID}}
<br> Type: {{.Type}}
<br> {{.Body}}
</p>
</body>
</html>
`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderAlert(alert models.Alert) (subject string, body string, err error) {
	body, err = render(alertTemplate, alert)
	return AlertSubject, body, err
}

func RenderFeedback(feedback models.Feedback) (subject string, body string, err error) {
	body, err = render(feedbackTemplate, feedback)
	return FeedbackSubject, body, err
}
