package html

import "strings"

var (
	scriptReplacer = strings.NewReplacer(
		"<!--", `\x3C!--`,
		"<script", `\x3Cscript`,
		"</script", `\x3C/script`,
	)
	styleReplacer = strings.NewReplacer(
		"</style", `\3C/style`,
		"</script", `\3C/script`,
	)
)

// Script creates a <script> element. String children are emitted without
// tag delimiter escaping; "<!--", "<script" and "</script" are rewritten
// with a \x3C escape so they cannot end the element. The rewrite is purely
// textual and also applies inside string literals.
func Script(args ...any) *Element {
	e := pre("script", args)
	e.EscapeTagDelimiters(false)
	e.filter = scriptReplacer.Replace
	return e
}

// Style creates a <style> element. String children are emitted without
// tag delimiter escaping; "</style" and "</script" are rewritten with the
// CSS escape \3C.
func Style(args ...any) *Element {
	e := pre("style", args)
	e.EscapeTagDelimiters(false)
	e.filter = styleReplacer.Replace
	return e
}
