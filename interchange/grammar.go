// SPDX-License-Identifier: MIT

package interchange

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type document struct {
	Lines []*line `parser:"@@*"`
}

type line struct {
	Comment *string `parser:"  @Comment EOL"`
	IDs     []int   `parser:"| @Int+ EOL"`
	Blank   bool    `parser:"| @EOL"`
}

var fileLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `c( [^\n]*)?`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

var parseFile = participle.MustBuild[document](
	participle.Lexer(fileLexer),
)

// text returns the comment body without the leading marker.
func (l *line) text() string {
	return strings.TrimSpace(strings.TrimPrefix(*l.Comment, "c"))
}
