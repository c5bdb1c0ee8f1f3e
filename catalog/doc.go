// Package catalog holds the descriptive metadata shown next to each helix:
// scientific classification, the esoteric "strand activation" notes and the
// page labels, keyed by strand count.
//
// The table is plain data, kept outside the geometry generator. The default
// table is embedded from strands.yaml and covers 2..12 strands; any other
// count resolves to a generated fallback entry, so Lookup never fails.
//
//	tbl, err := catalog.Default()
//	e := tbl.Lookup(7)   // stored entry, "7-Strand DNA"
//	f := tbl.Lookup(20)  // fallback: "20-Strand DNA", Fallback == true
package catalog
