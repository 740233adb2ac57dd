package domain

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinate is within the WGS84 range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
