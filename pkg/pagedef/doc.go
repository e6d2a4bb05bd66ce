// Package pagedef loads GUI page definitions from YAML (or JSON) files and
// builds them into layout pages.
//
// A definition file declares optional vars and a set of pages:
//
//	vars:
//	  ns: snum.NoSpherA2
//	pages:
//	  nosphera2:
//	    condition: "spy.GetParam('{{ ns }}.Calculate')"
//	    blocks:
//	      - table:
//	          name: SNUM_REFINEMENT_NSFF
//	          rows:
//	            - - help: NoSpherA2_Options_1
//	              - bold: {text: Basis Set, width: 15%, align: left}
//	              - widget: {kind: combo, params: {name: basis, items: x, phil: "{{ ns }}.basis_name"}}
//
// Every block or cell is a single-key mapping naming its kind. String values
// are expanded with pongo2 before decoding; parameter maps keep file order.
package pagedef
