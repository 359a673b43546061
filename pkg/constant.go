package pkg

const (
	INF_WEIGHT float64 = 1e15

	EPS float64 = 1e-9

	// approximate km per one degree of latitude at the equator. the straight-line
	// heuristic scales coordinate-degree distance by this constant. only admissible
	// as long as every road is at least as long as the scaled straight-line distance
	// between its endpoints; the dataset loader audits this assumption at load time.
	KM_PER_DEGREE float64 = 111.0
)

const (
	DEBUG = false
)
