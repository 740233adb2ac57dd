package domain

// Hospital is a directory entry offered as a pickup/drop-off candidate.
type Hospital struct {
	ID       string
	Name     string
	FullName string
	Address  string
	Lat      float64
	Lng      float64
}

// Place is a resolved location candidate returned by the places lookup,
// either from the hospital directory or from the geocoder.
type Place struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
}
