package html

func block(tag string, args []any) *Element    { return NewElement(tag, ModeBlock, args...) }
func phrase(tag string, args []any) *Element   { return NewElement(tag, ModePhrase, args...) }
func inline(tag string, args []any) *Element   { return NewElement(tag, ModeInline, args...) }
func pre(tag string, args []any) *Element      { return NewElement(tag, ModePre, args...) }
func void(tag string, args []any) *VoidElement { return NewVoidElement(tag, args...) }

// The document element

func Html(args ...any) *Element { return block("html", args) }

// Document metadata

func Head(args ...any) *Element     { return block("head", args) }
func Title(args ...any) *Element    { return phrase("title", args) }
func Base(args ...any) *VoidElement { return void("base", args) }
func Link(args ...any) *VoidElement { return void("link", args) }
func Meta(args ...any) *VoidElement { return void("meta", args) }

// Sections

func Body(args ...any) *Element    { return block("body", args) }
func Article(args ...any) *Element { return block("article", args) }
func Section(args ...any) *Element { return block("section", args) }
func Nav(args ...any) *Element     { return block("nav", args) }
func Aside(args ...any) *Element   { return block("aside", args) }
func H1(args ...any) *Element      { return phrase("h1", args) }
func H2(args ...any) *Element      { return phrase("h2", args) }
func H3(args ...any) *Element      { return phrase("h3", args) }
func H4(args ...any) *Element      { return phrase("h4", args) }
func H5(args ...any) *Element      { return phrase("h5", args) }
func H6(args ...any) *Element      { return phrase("h6", args) }
func Hgroup(args ...any) *Element  { return block("hgroup", args) }
func Header(args ...any) *Element  { return block("header", args) }
func Footer(args ...any) *Element  { return block("footer", args) }
func Address(args ...any) *Element { return block("address", args) }

// Grouping content

func P(args ...any) *Element          { return phrase("p", args) }
func Hr(args ...any) *VoidElement     { return void("hr", args) }
func Pre(args ...any) *Element        { return pre("pre", args) }
func Blockquote(args ...any) *Element { return block("blockquote", args) }
func Ol(args ...any) *Element         { return block("ol", args) }
func Ul(args ...any) *Element         { return block("ul", args) }
func Menu(args ...any) *Element       { return block("menu", args) }
func Li(args ...any) *Element         { return block("li", args) }
func Dl(args ...any) *Element         { return block("dl", args) }
func Dt(args ...any) *Element         { return phrase("dt", args) }
func Dd(args ...any) *Element         { return phrase("dd", args) }
func Figure(args ...any) *Element     { return block("figure", args) }
func Figcaption(args ...any) *Element { return phrase("figcaption", args) }
func Main(args ...any) *Element       { return block("main", args) }
func Search(args ...any) *Element     { return block("search", args) }
func Div(args ...any) *Element        { return block("div", args) }

// Text-level semantics

func A(args ...any) *Element       { return inline("a", args) }
func Em(args ...any) *Element      { return inline("em", args) }
func Strong(args ...any) *Element  { return inline("strong", args) }
func Small(args ...any) *Element   { return inline("small", args) }
func S(args ...any) *Element       { return inline("s", args) }
func Cite(args ...any) *Element    { return inline("cite", args) }
func Q(args ...any) *Element       { return inline("q", args) }
func Dfn(args ...any) *Element     { return inline("dfn", args) }
func Abbr(args ...any) *Element    { return inline("abbr", args) }
func Ruby(args ...any) *Element    { return inline("ruby", args) }
func Rt(args ...any) *Element      { return inline("rt", args) }
func Rp(args ...any) *Element      { return inline("rp", args) }
func Time_(args ...any) *Element   { return inline("time", args) }
func Code(args ...any) *Element    { return inline("code", args) }
func Var(args ...any) *Element     { return inline("var", args) }
func Samp(args ...any) *Element    { return inline("samp", args) }
func Kbd(args ...any) *Element     { return inline("kbd", args) }
func Sub(args ...any) *Element     { return inline("sub", args) }
func Sup(args ...any) *Element     { return inline("sup", args) }
func I(args ...any) *Element       { return inline("i", args) }
func B(args ...any) *Element       { return inline("b", args) }
func U(args ...any) *Element       { return inline("u", args) }
func Mark(args ...any) *Element    { return inline("mark", args) }
func Bdi(args ...any) *Element     { return inline("bdi", args) }
func Bdo(args ...any) *Element     { return inline("bdo", args) }
func Span(args ...any) *Element    { return inline("span", args) }
func Br(args ...any) *VoidElement  { return void("br", args) }
func Wbr(args ...any) *VoidElement { return void("wbr", args) }

// DataElement creates a <data> element. Data is the data-* attribute
// helper.
func DataElement(args ...any) *Element { return inline("data", args) }

// Edits

func Ins(args ...any) *Element { return inline("ins", args) }
func Del(args ...any) *Element { return inline("del", args) }

// Embedded content

func Picture(args ...any) *Element    { return block("picture", args) }
func Source(args ...any) *VoidElement { return void("source", args) }
func Img(args ...any) *VoidElement    { return void("img", args) }
func Iframe(args ...any) *Element     { return block("iframe", args) }
func Embed(args ...any) *VoidElement  { return void("embed", args) }
func Object(args ...any) *Element     { return block("object", args) }
func Video(args ...any) *Element      { return block("video", args) }
func Audio(args ...any) *Element      { return block("audio", args) }
func Track(args ...any) *VoidElement  { return void("track", args) }
func Map_(args ...any) *Element       { return block("map", args) }
func Area(args ...any) *VoidElement   { return void("area", args) }

// Tabular data

func Table(args ...any) *Element    { return block("table", args) }
func Caption(args ...any) *Element  { return phrase("caption", args) }
func Colgroup(args ...any) *Element { return block("colgroup", args) }
func Col(args ...any) *VoidElement  { return void("col", args) }
func Tbody(args ...any) *Element    { return block("tbody", args) }
func Thead(args ...any) *Element    { return block("thead", args) }
func Tfoot(args ...any) *Element    { return block("tfoot", args) }
func Tr(args ...any) *Element       { return block("tr", args) }
func Td(args ...any) *Element       { return phrase("td", args) }
func Th(args ...any) *Element       { return phrase("th", args) }

// Forms

func Form(args ...any) *Element      { return block("form", args) }
func Label(args ...any) *Element     { return phrase("label", args) }
func Input(args ...any) *VoidElement { return void("input", args) }
func Button(args ...any) *Element    { return phrase("button", args) }
func Select(args ...any) *Element    { return block("select", args) }
func Datalist(args ...any) *Element  { return block("datalist", args) }
func Optgroup(args ...any) *Element  { return block("optgroup", args) }
func Option(args ...any) *Element    { return phrase("option", args) }
func Textarea(args ...any) *Element  { return pre("textarea", args) }
func Output(args ...any) *Element    { return phrase("output", args) }
func Progress(args ...any) *Element  { return inline("progress", args) }
func Meter(args ...any) *Element     { return inline("meter", args) }
func Fieldset(args ...any) *Element  { return block("fieldset", args) }
func Legend(args ...any) *Element    { return phrase("legend", args) }

// Interactive elements

func Details(args ...any) *Element { return block("details", args) }
func Summary(args ...any) *Element { return phrase("summary", args) }
func Dialog(args ...any) *Element  { return block("dialog", args) }

// Scripting

func Noscript(args ...any) *Element { return block("noscript", args) }
func Template(args ...any) *Element { return block("template", args) }
func Slot(args ...any) *Element     { return block("slot", args) }
func Canvas(args ...any) *Element   { return block("canvas", args) }

// CustomElement creates a block element with any tag, such as a custom
// element name.
func CustomElement(tag string, args ...any) *Element { return block(tag, args) }
