// Package content turns a directory of Markdown files into site pages.
//
// Every .md file becomes a Page whose path follows its location:
// index.md maps to "/", about.md to "/about" and blog/index.md to
// "/blog/". A YAML front matter block delimited by --- lines sets the
// title, description, lang, an explicit path and the draft flag. Other
// files are exported unchanged as assets.
package content
