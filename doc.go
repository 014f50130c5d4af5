// Package contactnet builds quickly generated, symmetric, duplicate-free
// random contact graphs with one scalar value per node, as a substrate for
// epidemic, diffusion and opinion simulations.
//
// Subpackages:
//
//	network/  — Network: node values, symmetric links, Poisson RandomConnect
//	rng/      — Source contract (normal, Poisson, uniform) + gonum distuv implementation
//	traverse/ — breadth-first search over a Network (depths, parents, hooks)
//	stats/    — degree histogram, value moments, connected components
//	cmd/contactnet — CLI: generate a network and print a report
//
// Quick example:
//
//	nw := network.New(network.WithSeed(42))
//	nw.Resize(10_000)
//	links, err := nw.RandomConnect(4)
//
// Every node draws a Poisson(4) number of links to uniformly chosen partners;
// self-loops and duplicates are redrawn, so the result is a simple
// undirected graph with realized mean degree close to 8.
//
//	go get github.com/katalvlaran/contactnet
package contactnet
