// Package centrality computes node importance measures on an undirected
// graph.
//
// Three measures are provided: degree (local connectivity), betweenness
// (bridge position on shortest paths), and eigenvector (connectivity to
// well-connected nodes). All three treat the graph as unweighted; edge
// weights select which edges exist upstream but do not influence the
// scores. Analyze joins the three measures into a per-node table suitable
// for CSV export.
package centrality
