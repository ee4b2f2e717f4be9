package file

// Configuration settings for file sinking
type Configuration struct {
	Dir          string `toml:"dir" default:"log" comment:"output folder"`
	Outputraw    string `toml:"outputraw" default:"rawData.log" comment:"output file name for full analyses (JSON lines)"`
	Outputreport string `toml:"outputreport" default:"report.log" comment:"output file name for seat reports (JSON lines)"`
}
