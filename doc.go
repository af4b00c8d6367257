// Package gridkit is an in-memory toolbox for small algorithmic puzzles —
// 2D grids with rotated views, disjoint sets, bounded priority queues and
// quick numeric scanning.
//
// 🚀 What is gridkit?
//
//	A compact, pure-Go library that brings together:
//		• Integer plane primitives: points, exact 2×2 unimodular matrices
//		• Dense grids: bounds-checked, parseable from text, printable back
//		• Sparse grids: default-valued mappings, bakeable into dense grids
//		• Transform views: rotate/reflect a grid without copying a cell
//		• Traversal: BFS, Dial's algorithm and components over any grid
//		• Union-Find: path compression + union by rank
//		• Bucket queue: O(1) pushes for small bounded priorities
//		• Parsing: pull every integer out of a messy puzzle input
//
// ✨ Why choose gridkit?
//
//   - Puzzle-first – the API mirrors how grid puzzles are actually solved
//   - Predictable – fixed neighbor orders, documented contract violations
//   - Pure Go – no cgo, no hidden machinery
//   - Composable – every grid kind satisfies one small View interface
//
// Under the hood, everything is organized under six subpackages:
//
//	geom/      — Point arithmetic and exact integer 2×2 matrices
//	grid/      — Grid, Sparse and Transform, unified by View
//	gridpath/  — BFS, Dial shortest paths, connected components
//	unionfind/ — disjoint-set bookkeeping
//	bucketq/   — bounded-priority bucket queue
//	parse/     — generic integer scanners for raw puzzle text
//
// Quick ASCII example:
//
//	###        #..
//	...   →    #..
//	...        #..
//
//	a 3×3 grid and the same grid seen through a quarter-turn view.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
