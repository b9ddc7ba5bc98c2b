package models

// Setting is the settings table row.
type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}
