package config

import (
	"github.com/francois-poidevin/flightsun/internal/app/rest"
	"github.com/francois-poidevin/flightsun/internal/app/service"
	"github.com/francois-poidevin/flightsun/internal/app/sinkers/db"
	"github.com/francois-poidevin/flightsun/internal/app/sinkers/file"
)

// Configuration contains application settings
type Configuration struct {
	Log struct {
		Level  string `toml:"level" default:"info" comment:"Log level: trace, debug, info, warn, error, fatal and panic"`
		Format string `toml:"format" default:"text" comment:"Log format: text or json"`
	} `toml:"Log" comment:"###############################\n Logs Settings \n##############################"`

	Flightsun struct {
		Classifier string                        `toml:"classifier" default:"clock" comment:"sun condition classifier of the report: clock or elevation"`
		CacheSize  int                           `toml:"cacheSize" default:"256" comment:"number of analyses kept in memory, 0 disables the cache"`
		Sinkertype string                        `toml:"sinkertype" default:"STDOUT" comment:"the sinker Type use (STDOUT|FILE|DB)"`
		Sampling   service.SamplingConfiguration `toml:"sampling" comment:"###############################\n path sampling \n##############################"`
		HTTP       rest.Configuration            `toml:"http" comment:"###############################\n REST service \n##############################"`
		File       file.Configuration            `toml:"file" comment:"###############################\n file sinker configuration \n##############################"`
		DB         db.Configuration              `toml:"db" comment:"###############################\n db sinker configuration \n##############################"`
	} `toml:"Flightsun" comment:"###############################\n Flightsun Settings \n##############################"`
}
