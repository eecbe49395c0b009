// Package rec implements recursion schemes over arbitrary recursively-defined
// shapes: structured folds (catamorphisms), unfolds (anamorphisms), and their
// refined variants, all independent of any concrete tree type.
//
// Go has no higher-kinded generics, so a shape does not implement an interface.
// Instead a shape hands its capabilities to each scheme as plain function
// values:
//
//   - project decomposes a term into one layer whose children are terms,
//   - embed is its inverse,
//   - a generic map function rebuilds a layer, transforming every child slot
//     left to right while preserving position and count,
//   - a generic fold function accumulates over a layer's children left to right,
//   - a generic traverse function rebuilds a layer effectfully, stopping at the
//     first error,
//   - an optional unzip function splits a layer of paired children into two
//     parallel layers.
//
// Because the map/fold/traverse functions are generic in the child type, the
// compiler infers the instantiation each scheme needs; a typical call reads
//
//	sum := rec.Cata(e, exp.Project, exp.Map, func(l exp.ExpF[int]) int { ... })
//
// Key entry points:
//
// Cata, Para, Zygo, ParaZygo and Histo fold a term bottom-up, presenting the
// algebra with progressively richer views of each child (plain value, original
// subterm, helper value, full attributed history). Ana, Apo and Futu unfold a
// seed top-down, giving the coalgebra progressively finer control over how far
// each step reaches. Hylo and Chrono fuse an unfold into a fold without
// materializing the intermediate term. The ...M variants thread (value, error)
// through the traversal and abort on the first failure; TopDownCataM rewrites
// a term top-down while threading caller state such as variable bindings.
//
// GCata and GAna are the generalized combinators the named schemes specialize:
// they commute the shape with a context through a distributive law (see
// DistZygo, DistPara, DistHisto, DistFutu and friends). The named schemes are
// implemented directly for ergonomics; the property tests pin them to their
// GCata/GAna derivations.
//
// Attributed terms (every node paired with a computed value) and partial terms
// (layers that may suspend into a seed) are recursive in the shape itself, so
// each shape ties that knot once with a small type declaration and passes the
// constructor/destructor to Histo, Futu, Annotate and Chrono. See the internal
// expression fixture for the pattern.
//
// All schemes are pure and synchronous. Recursion depth is bounded by term
// depth, and no state is shared across invocations.
package rec
