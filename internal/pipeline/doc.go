// Package pipeline implements the Markdown-to-LinkedIn text rewriting pipeline.
//
// The transcoder is an ordered list of named stages, each a pure
// string-to-string rewrite. The order is part of the contract:
//
//  1. normalize: byte order mark and line endings
//  2. protect-code: fenced blocks, inline code, link targets and bare URLs
//     are shielded from every later stage until reveal-code
//  3. unordered-lists: "-", "*", "+" markers become "• " (before emphasis, so a
//     leading "*item" is never read as italic)
//  4. ordered-lists: each contiguous run is renumbered from 1
//  5. emphasis: "***x***" kept literally, "**x**" bold, "*x*" italic
//  6. headers: "#", "##", "###" lines become bold text plus a blank line
//  7. code-blocks: shielded fences become framed plain-text blocks
//  8. inline-code: shielded spans lose their backticks
//  9. blockquotes: "> " becomes a thought marker
//  10. links: "[label](url)" becomes "label (url)"
//  11. reveal-code: shielded code text is restored verbatim
//  12. whitespace: at most one blank line between paragraphs, document trimmed
//
// A stage failure or panic aborts the run and the original input is returned
// together with the error, so callers never see half-converted text.
//
// The package also hosts the HTML preview collaborator (goldmark, sanitized
// by bluemonday, with RebaseLinks for local images) and the post front
// matter parser used by the CLI and HTTP surfaces.
package pipeline
