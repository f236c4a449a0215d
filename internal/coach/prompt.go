package coach

import (
	"bytes"
	"text/template"

	"github.com/abhisek/casetrack/internal/cases"
)

const hintSystemPrompt = `You coach candidates preparing for management consulting case interviews.
The candidate is solving a timed case and bought a hint.

Rules:
- Reply with at most five words.
- Name the method or the first calculation to make.
- Never state the answer, an intermediate result, or any number.`

const peekSystemPrompt = `You coach candidates preparing for management consulting case interviews.
The candidate is solving a timed case and bought a look at the approach.

Rules:
- Name the framework that structures the case.
- Give at most five ordered steps, one short sentence each.
- Refer to the given figures by name, never compute them.
- Never state the answer, an intermediate result, or the correct option.`

type promptData struct {
	Title    string
	Category cases.Category
	Stem     string
	Options  []string
	Approach string
}

var userTemplate = template.Must(template.New("coach").Parse(`Case: {{.Title}} ({{.Category}})
Question: {{.Stem}}
{{if .Options}}Options:
{{range $i, $o := .Options}}{{$i}}. {{$o}}
{{end}}{{end}}{{if .Approach}}Reference approach: {{.Approach}}
{{end}}`))

func buildMessage(q *cases.PromptInstance, t *cases.Template) (string, error) {
	data := promptData{
		Title:    q.Title,
		Category: q.Category,
		Stem:     q.Stem,
		Options:  q.Decision.Options,
	}
	if t != nil {
		data.Approach = t.Approach
	}
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
