// Package decaygraph classifies B → D(*) τ ν decay candidates reconstructed
// at an Υ(4S) experiment.
//
// Every event of a ROOT ntuple is turned into two particle graphs: the
// reconstructed candidate graph and, for simulated samples, the generator
// graph. Depth-first classifiers label the D, D*, τ and B decays on each
// side, the generator graph is contracted to the particles the detector can
// see, and every reconstructed particle is matched to its generator
// counterpart. The result is one flat record per Υ(4S) candidate.
//
// The work is split over small packages:
//
//	core/       thread-safe directed particle graph
//	bfs/, dfs/  traversals with visitor hooks
//	lund/, pdt/ particle codes and the name table
//	mode/       classification enums
//	catalogue/  decay-mode lookup over canonical particle multisets
//	event/      flat per-event input and category limits
//	recograph/  reconstructed graph builder and classifier
//	mcgraph/    generator graph builder and classifier
//	truthmatch/ edge contraction and reco ↔ truth matching
//	record/     per-candidate output record
//	pipeline/   per-event driver tying the stages together
//	rootio/     ROOT ntuple source and writer
//	h5out/      HDF5 candidate tables
//	summary/    classification histograms
//	graphviz/   DOT export of the graphs
//	config/     YAML run configuration
//
// The decaygraph command (cmd/decaygraph) wires these into a batch tool:
//
//	go install github.com/katalvlaran/decaygraph/cmd/decaygraph@latest
//	decaygraph run --input sig.root --mc --output sig.h5
package decaygraph
