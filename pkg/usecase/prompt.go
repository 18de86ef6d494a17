package usecase

import (
	"bytes"
	"embed"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

//go:embed prompt/*.md
var promptFS embed.FS

var promptTemplates = template.Must(template.ParseFS(promptFS, "prompt/*.md"))

type promptData struct {
	CurrentTime string
	Language    string
	Context     string
	Question    string
	NotFound    string
}

func renderPrompt(name string, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", goerr.Wrap(err, "failed to render prompt", goerr.V("template", name))
	}
	return buf.String(), nil
}

func formatCurrentTime(t time.Time) string {
	return t.Format("Monday, 2006-01-02 15:04 MST")
}
