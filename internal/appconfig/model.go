package appconfig

// Entry is one key/value pair of the app_config table.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
