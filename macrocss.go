// Package macrocss compiles utility macro tokens found in arbitrary textual
// content (markup, templates, scripts) into a deduplicated, order-stable
// stylesheet.
//
// # Compilation
//
// Configure macros as pattern/handler pairs and compile content:
//
//	compiler, err := macrocss.New(macrocss.Config{
//		Macros: []macrocss.Macro{
//			{Pattern: `m:(\S+)`, Handler: func(m *macrocss.MacroMatch, p *macrocss.SelectorProperties) error {
//				v, err := m.Capture(0)
//				if err != nil {
//					return err
//				}
//				p.Add("margin", v)
//				return nil
//			}},
//		},
//		Screens: []macrocss.Screen{{Name: "md", MediaQuery: "(min-width: 768px)"}},
//	})
//	result, err := compiler.Compile(`<div class="m:10px md:hover:m:20px">`, nil)
//	css := result.GenerateCss(macrocss.RenderOptions{})
//
// Tokens carry chained prefixes for breakpoints and pseudo-classes
// ("md:hover:m:20px"). Compiling the same content again, or new content into
// the same result, never duplicates or reorders output.
//
// # Continuation
//
// A CompilationResult serializes to a plain snapshot and hydrates on the
// other side of a process boundary; the selector mangler's assignment table
// travels with it so short identifiers stay collision-free across passes.
//
// # CLI Tool
//
// macrocss also provides a build CLI. Install with:
//
//	go install github.com/macrocss/macrocss/cmd/macrocss@latest
package macrocss
