package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexExtractor(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected []string
	}{
		{
			name:     "document order",
			html:     `<p><img src="a.jpg"></p><img alt="b" src="/static/b.png" />`,
			expected: []string{"a.jpg", "/static/b.png"},
		},
		{
			name:     "duplicates are kept",
			html:     `<img src="a.jpg"><img src="a.jpg">`,
			expected: []string{"a.jpg", "a.jpg"},
		},
		{
			name:     "attributes spanning lines",
			html:     "<img class=\"hero\"\n     src=\"hero.webp?w=1200\">",
			expected: []string{"hero.webp?w=1200"},
		},
		{
			name:     "last src wins inside one tag",
			html:     `<img data-src="lazy.jpg" src="real.jpg">`,
			expected: []string{"real.jpg"},
		},
		{
			name:     "single quotes are not matched",
			html:     `<img src='a.jpg'>`,
			expected: []string{},
		},
		{
			name:     "uppercase tag is not matched",
			html:     `<IMG SRC="a.jpg">`,
			expected: []string{},
		},
		{
			name:     "tag without space is not matched",
			html:     "<img\tsrc=\"a.jpg\">",
			expected: []string{},
		},
		{
			name:     "empty src is not matched",
			html:     `<img src=""><img src="b.gif">`,
			expected: []string{"b.gif"},
		},
		{
			name:     "src outside the tag is ignored",
			html:     `<img alt="x"> <a src="no.jpg">`,
			expected: []string{},
		},
		{
			name:     "commented markup still matches",
			html:     `<!-- <img src="old.png"> -->`,
			expected: []string{"old.png"},
		},
		{
			name:     "no images",
			html:     `<html><body>nothing here</body></html>`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcs, err := RegexExtractor{}.Extract(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, srcs)
		})
	}
}

func TestDOMExtractor(t *testing.T) {
	html := `<html><body>
		<IMG SRC="upper.jpg">
		<img src='single.png'>
		<img src="">
		<!-- <img src="commented.png"> -->
		<div><img alt="x" src="/nested/c.gif"></div>
	</body></html>`

	srcs, err := DOMExtractor{}.Extract(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"upper.jpg", "single.png", "/nested/c.gif"}, srcs)
}

func TestNew(t *testing.T) {
	e, err := New("regex")
	require.NoError(t, err)
	assert.IsType(t, RegexExtractor{}, e)

	e, err = New("")
	require.NoError(t, err)
	assert.IsType(t, RegexExtractor{}, e)

	e, err = New("DOM")
	require.NoError(t, err)
	assert.IsType(t, DOMExtractor{}, e)

	_, err = New("xpath")
	assert.Error(t, err)
}
