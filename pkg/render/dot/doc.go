// Package dot emits dependency graphs in Graphviz DOT format and renders
// them to image formats.
//
// [Marshal] produces the textual artifact: a digraph with one line per
// dependency edge, each package labeled "name version". Edges are sorted
// lexicographically so the same graph always yields byte-identical output,
// which keeps diffs reproducible. Line order carries no meaning beyond that.
//
// [RenderSVG] and [RenderPNG] rasterize a DOT string in-process using
// [github.com/goccy/go-graphviz] (a WebAssembly build of Graphviz), so no
// system Graphviz installation is required.
package dot
