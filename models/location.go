// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Location is a single row of the em_locations table as exposed by the REST API.
type Location struct {
	// LocationID is the identifying field. A zero LocationID means "no location".
	LocationID int64  `json:"location_id"`
	PostID     int64  `json:"post_id"`
	Slug       string `json:"location_slug"`
	Name       string `json:"location_name"`
	Owner      int64  `json:"location_owner"`
	Address    string `json:"location_address"`
	Town       string `json:"location_town"`
	State      string `json:"location_state"`
	Postcode   string `json:"location_postcode"`
	Region     string `json:"location_region"`
	Country    string `json:"location_country"`

	Latitude  *float64 `json:"location_latitude"`
	Longitude *float64 `json:"location_longitude"`

	Content string `json:"post_content"`
	Status  int    `json:"location_status"`
}
