package builder

// Method name tokens used to prefix errors with the constructor name.
const (
	methodBuild      = "Build"
	methodBipartite  = "Bipartite"
	methodMultilayer = "Multilayer"
	methodState      = "State"
	methodClique     = "Clique"
)

// FirstStateID is the id given to the first (edge, vertex) pair a State
// builder encounters; later pairs count up from here.
const FirstStateID = 1

// DefaultWorkers is the link enumeration concurrency when WithWorkers is unset.
const DefaultWorkers = 1

// featureNamePrefix is prepended to the hyperedge id in default feature names.
const featureNamePrefix = "Hyperedge "
