package adminview

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pkg/errors"
)

const DefaultStyle = "colorful"

// RenderJSON pretty prints raw with a four space indent and highlights it.
// The result starts with the style's css so it can be embedded as is.
func RenderJSON(raw []byte, style string) (template.HTML, error) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "    "); err != nil {
		return "", errors.Wrap(err, "unable to indent json")
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	if style == "" {
		style = DefaultStyle
	}
	chromaStyle := styles.Get(style)
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	iterator, err := lexer.Tokenise(nil, indented.String())
	if err != nil {
		return "", errors.Wrap(err, "unable to tokenise json")
	}
	var out bytes.Buffer
	out.WriteString("<style>")
	if err = formatter.WriteCSS(&out, chromaStyle); err != nil {
		return "", errors.Wrap(err, "unable to write style")
	}
	out.WriteString("</style><br/>")
	if err = formatter.Format(&out, chromaStyle, iterator); err != nil {
		return "", errors.Wrap(err, "unable to format json")
	}
	return template.HTML(out.String()), nil
}
