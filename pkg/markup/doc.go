// Package markup models the small tag tree emitted for the Olex2 HTML dialect:
// ordered attribute maps, elements, raw text, comments and fragments. Output
// is deterministic; attribute order follows insertion order and text is never
// escaped because the host framework reads it literally.
package markup
