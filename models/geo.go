package models

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PointQuery is the input of point resolution. Explicit coordinates win over City.
type PointQuery struct {
	Lat  *float64
	Lon  *float64
	City string
}
