package macrocss

// propertyShortcuts maps token prefixes of the default macro to CSS property
// names. Tokens may also spell the property out in full ("margin:10px").
var propertyShortcuts = map[string]string{
	"m":  "margin",
	"mt": "margin-top",
	"mr": "margin-right",
	"mb": "margin-bottom",
	"ml": "margin-left",
	"mx": "margin-inline",
	"my": "margin-block",
	"p":  "padding",
	"pt": "padding-top",
	"pr": "padding-right",
	"pb": "padding-bottom",
	"pl": "padding-left",
	"px": "padding-inline",
	"py": "padding-block",
	"w":  "width",
	"h":  "height",
	"bg": "background",
	"c":  "color",
	"ta": "text-align",
	"td": "text-decoration",
	"tt": "text-transform",
	"fs": "font-size",
	"fw": "font-weight",
	"ff": "font-family",
	"lh": "line-height",
	"d":  "display",
	"ai": "align-items",
	"jc": "justify-content",
	"fd": "flex-direction",
	"g":  "gap",
	"br": "border-radius",
	"o":  "opacity",
	"z":  "z-index",
}

// DefaultMacros returns the built-in macro table: a single property:value
// macro accepting the shortcut table above and known CSS property names.
// Unknown names add nothing, which keeps incidental "word:word" content
// (URLs, protocol prefixes) from registering records. Values use "_" as a
// space stand-in so multi-part values stay one token ("border:1px_solid_red").
func DefaultMacros() []Macro {
	return []Macro{
		{
			Pattern: `([a-z][a-z-]*):(\S+)`,
			Handler: func(m *MacroMatch, props *SelectorProperties) error {
				name, err := m.Capture(0)
				if err != nil {
					return err
				}
				value, err := m.Capture(1)
				if err != nil {
					return err
				}
				if full, ok := propertyShortcuts[name]; ok {
					name = full
				} else if !knownProperties[name] {
					return nil
				}
				props.Add(name, unescapeValue(value))
				return nil
			},
		},
	}
}

// knownProperties are the spelled-out CSS property names the default macro
// accepts. Vendor-prefixed properties are deliberately absent; utilities
// should target standard properties.
var knownProperties = map[string]bool{
	"background": true, "background-color": true, "background-image": true,
	"background-size": true, "background-position": true, "background-repeat": true,
	"color": true, "border": true, "border-color": true, "border-radius": true,
	"border-width": true, "border-style": true, "border-top": true,
	"border-right": true, "border-bottom": true, "border-left": true,
	"box-shadow": true, "opacity": true, "outline": true, "fill": true, "stroke": true,
	"display": true, "flex": true, "flex-direction": true, "flex-wrap": true,
	"flex-grow": true, "flex-shrink": true, "flex-basis": true,
	"justify-content": true, "align-items": true, "align-self": true,
	"align-content": true, "gap": true, "row-gap": true, "column-gap": true,
	"grid": true, "grid-template-columns": true, "grid-template-rows": true,
	"grid-column": true, "grid-row": true, "position": true, "inset": true,
	"top": true, "right": true, "bottom": true, "left": true,
	"width": true, "height": true, "min-width": true, "min-height": true,
	"max-width": true, "max-height": true, "padding": true, "padding-top": true,
	"padding-right": true, "padding-bottom": true, "padding-left": true,
	"margin": true, "margin-top": true, "margin-right": true,
	"margin-bottom": true, "margin-left": true, "overflow": true,
	"overflow-x": true, "overflow-y": true, "z-index": true, "aspect-ratio": true,
	"object-fit": true, "object-position": true, "visibility": true, "cursor": true,
	"font-family": true, "font-size": true, "font-weight": true, "font-style": true,
	"line-height": true, "letter-spacing": true, "text-align": true,
	"text-decoration": true, "text-transform": true, "text-overflow": true,
	"white-space": true, "word-break": true, "vertical-align": true,
	"transition": true, "transform": true, "transform-origin": true,
	"animation": true, "filter": true, "backdrop-filter": true,
	"mix-blend-mode": true, "clip-path": true, "content": true,
	"pointer-events": true, "user-select": true, "list-style": true,
}

func unescapeValue(v string) string {
	out := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		switch {
		case v[i] == '\\' && i+1 < len(v) && v[i+1] == '_':
			out = append(out, '_')
			i++
		case v[i] == '_':
			out = append(out, ' ')
		default:
			out = append(out, v[i])
		}
	}
	return string(out)
}
