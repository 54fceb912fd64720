package text_test

import (
	"html/template"
	"portfolio-go-backend/pkg/util/text"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		assert func(t *testing.T, got template.HTML)
	}{
		{
			name:  "Should convert bold, italic and links",
			input: "**a** *b* [c](http://x)",
			assert: func(t *testing.T, got template.HTML) {
				assert.Equal(t, template.HTML(`<strong>a</strong> <em>b</em> <a href="http://x" target="_blank">c</a>`), got)
			},
		},
		{
			name:  "Should not split a bold pair into two italics",
			input: "**important**",
			assert: func(t *testing.T, got template.HTML) {
				assert.Equal(t, template.HTML("<strong>important</strong>"), got)
			},
		},
		{
			name:  "Should convert newlines to breaks",
			input: "line 1\nline 2",
			assert: func(t *testing.T, got template.HTML) {
				assert.Equal(t, template.HTML("line 1<br>line 2"), got)
			},
		},
		{
			name:  "Should leave plain text untouched",
			input: "rien de special",
			assert: func(t *testing.T, got template.HTML) {
				assert.Equal(t, template.HTML("rien de special"), got)
			},
		},
		{
			name:  "Should return empty for empty input",
			input: "",
			assert: func(t *testing.T, got template.HTML) {
				assert.Equal(t, template.HTML(""), got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.MarkdownToHTML(tt.input)
			tt.assert(t, got)
		})
	}
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"Go", "Python", "SQL"}, text.Split("Go,Python,SQL", ","))
	assert.Equal(t, []string{}, text.Split("", ","))
	assert.Equal(t, []string{"solo"}, text.Split("solo", ","))
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "Go", text.Trim("  Go \n"))
	assert.Equal(t, "", text.Trim("   "))
}

func TestSkillPercentage(t *testing.T) {
	tests := []struct {
		proficiency string
		want        int
	}{
		{"beginner", 25},
		{"intermediate", 50},
		{"advanced", 75},
		{"expert", 100},
		{"wizard", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.proficiency, func(t *testing.T) {
			assert.Equal(t, tt.want, text.SkillPercentage(tt.proficiency))
		})
	}
}
