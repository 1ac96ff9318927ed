// Package context provides the builder façade over path.Path and path.Atom
// construction, and formula aliasing by atom rebinding.
//
// Context.Alias walks a template formula and substitutes every atom it
// references with one reprefixed under the calling context's path, the same
// re-rooting attribute-access-based formula reuse performs implicitly —
// spelled out explicitly here since Go has no equivalent mechanism.
package context
