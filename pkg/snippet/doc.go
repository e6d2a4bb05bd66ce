// Package snippet renders leaf components: host snippet directives of the form
//
//	$+
//	    html.Snippet(
//	        "gui/snippets/input-combo",
//	        "name=...",
//	    )
//	$-
//
// plus include comments and the bracket heuristic applied to embedded host
// calls.
package snippet
