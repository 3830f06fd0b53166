package cleaner

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain text", "plain text, no markup", "plain text, no markup"},
		{"template", "Some {{Template|x=1}} text", "Some  text"},
		// url先被删除，方括号后删除，所以url前的空格保留下来
		{"url link keeps label", "See [https://example.com/page label text]", "See  label text"},
		{"url followed by no-break space", "See [https://x.org/a\u00a0label text]", "See \u00a0label text"},
		{"url ending in non-ascii letter", "See [https://x.org/é]", "See"},
		{"url with non-ascii path", "[http://de.wikipedia.org/wiki/Übersicht Übersicht]", "Übersicht"},
		{"internal link", "[[Gene|ABC]]", "Gene|ABC"},
		{"control characters", "a\nb\r\nc\td", "abcd"},
		{"template across lines", "x {{rsnum\n|rsid=1\n|Gene=APOE\n}} y", "x  y"},
		{"www url", "[www.snpedia.com more]", "more"},
		{"surrounding whitespace", "  \t text \n ", "text"},
		{"only markup", "{{a}}{{b}}", ""},
		{"nested template leaves residue", "{{a {{b}} c}}", "c}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestCleanProperties(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"{{Genotype\n| allele1=A\n| allele2=G\n}}\nCarriers have [[increased]] risk.",
		"line one\r\nline two\tcolumn",
		"See [http://www.ncbi.nlm.nih.gov/pubmed/123 PMID 123] and {{PMID|456}}.",
		"{{Rsnum\n|rsid=429358\n|Gene=APOE\n}}\nrs429358 is one of two SNPs [[APOE]].",
		"a {{x}} b {{x}} c",
	}

	for _, in := range inputs {
		out := Clean(in)
		assert.False(t, strings.ContainsAny(out, "\n\r\t"), "control chars left in %q", out)
		assert.False(t, templatePattern.MatchString(out), "template left in %q", out)
		assert.Equal(t, out, Clean(out), "clean is not idempotent for %q", in)
	}
}

func TestRemoveWithRegex(t *testing.T) {
	re := regexp.MustCompile(`(b+)`)

	assert.Equal(t, "ac", RemoveWithRegex(re, "abbc", ""))
	// 同样的文本在其它位置也会被替换
	assert.Equal(t, "a-c-d", RemoveWithRegex(re, "abbcbbd", "-"))
	assert.Equal(t, "x", RemoveWithRegex(re, "  x  ", ""))
}

func TestRemoveWithRegexReplacesEveryOccurrence(t *testing.T) {
	out := RemoveWithRegex(templatePattern, "{{cite}} text {{cite}}", "")
	assert.Equal(t, "text", out)
}
