package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON_Bare(t *testing.T) {
	raw := ExtractJSON(`{"title": "Intro", "items": [1, 2, 3]}`)
	assert.JSONEq(t, `{"title": "Intro", "items": [1, 2, 3]}`, string(raw))
}

func TestExtractJSON_Fenced(t *testing.T) {
	text := "Here is the result:\n```json\n{\"title\": \"Intro\"}\n```\nLet me know if you need more."
	raw := ExtractJSON(text)
	assert.JSONEq(t, `{"title": "Intro"}`, string(raw))
}

func TestExtractJSON_FencedAndBareAgree(t *testing.T) {
	payload := `{"questions": [{"id": 1, "text": "What is Go?"}]}`
	fenced := "```json\n" + payload + "\n```"

	assert.JSONEq(t, string(ExtractJSON(payload)), string(ExtractJSON(fenced)))
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	text := `Sure! The modules are: [{"title": "Basics"}, {"title": "Advanced"}] as requested.`
	raw := ExtractJSON(text)
	assert.JSONEq(t, `[{"title": "Basics"}, {"title": "Advanced"}]`, string(raw))
}

func TestExtractJSON_BracketsInsideStrings(t *testing.T) {
	text := `{"note": "use arr[0] and obj{} carefully"}`
	raw := ExtractJSON(text)
	assert.JSONEq(t, text, string(raw))
}

func TestExtractJSON_NoJSON(t *testing.T) {
	assert.Nil(t, ExtractJSON("no structured data here"))
	assert.Nil(t, ExtractJSON(""))
}

func TestExtractJSON_UnbalancedBrackets(t *testing.T) {
	assert.Nil(t, ExtractJSON(`{"title": "truncated`))
}
